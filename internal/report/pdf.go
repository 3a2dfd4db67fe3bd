package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFCanvas draws on an A4 fpdf document using core fonts.
type PDFCanvas struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	width  float64
	height float64
	font   Font
}

// NewPDFCanvas starts a document with one empty A4 page.
func NewPDFCanvas() *PDFCanvas {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	c := &PDFCanvas{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  w,
		height: h,
	}
	c.SetFont(Regular(10))
	return c
}

func (c *PDFCanvas) PageSize() (float64, float64) {
	return c.width, c.height
}

func (c *PDFCanvas) SetFont(f Font) {
	c.font = f
	style := ""
	if f.Bold {
		style = "B"
	}
	c.pdf.SetFont("Helvetica", style, f.Size)
}

func (c *PDFCanvas) SetTextColor(col Color) {
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) DrawString(x, y float64, s string) {
	c.pdf.Text(x, c.height-y, c.tr(s))
}

func (c *PDFCanvas) DrawCentredString(x, y float64, s string) {
	txt := c.tr(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(txt)/2, c.height-y, txt)
}

func (c *PDFCanvas) StringWidth(s string, f Font) float64 {
	current := c.font
	c.SetFont(f)
	w := c.pdf.GetStringWidth(c.tr(s))
	c.SetFont(current)
	return w
}

func (c *PDFCanvas) FillRect(x, y, w, h float64, fill Color) {
	c.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	c.pdf.Rect(x, c.height-y-h, w, h, "F")
}

func (c *PDFCanvas) StrokeRect(x, y, w, h, lineWidth float64, stroke Color) {
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	c.pdf.Rect(x, c.height-y-h, w, h, "D")
}

// DrawImage places the image file with its bottom-left corner at (x, y).
func (c *PDFCanvas) DrawImage(path string, x, y, w, h float64) error {
	c.pdf.ImageOptions(path, x, c.height-y-h, w, h, false, fpdf.ImageOptions{}, 0, "")
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("failed to draw image %s: %w", path, err)
	}
	return nil
}

func (c *PDFCanvas) ShowPage() {
	c.pdf.AddPage()
	c.SetFont(c.font)
}

// Save writes the document to path and closes it.
func (c *PDFCanvas) Save(path string) error {
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}
