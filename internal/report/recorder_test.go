package report

type op struct {
	kind  string
	page  int
	x, y  float64
	text  string
	font  Font
	color Color
}

// recorder is a Canvas that keeps every drawing call for inspection.
type recorder struct {
	width, height float64
	page          int
	font          Font
	color         Color
	ops           []op
}

func newRecorder() *recorder {
	l := A4Layout()
	return &recorder{width: l.PageWidth, height: l.PageHeight, page: 1}
}

func (r *recorder) PageSize() (float64, float64) { return r.width, r.height }
func (r *recorder) SetFont(f Font)                { r.font = f }
func (r *recorder) SetTextColor(c Color)          { r.color = c }

func (r *recorder) record(kind string, x, y float64, text string) {
	r.ops = append(r.ops, op{kind: kind, page: r.page, x: x, y: y, text: text, font: r.font, color: r.color})
}

func (r *recorder) DrawString(x, y float64, s string)        { r.record("text", x, y, s) }
func (r *recorder) DrawCentredString(x, y float64, s string) { r.record("centred", x, y, s) }

func (r *recorder) StringWidth(s string, f Font) float64 {
	return float64(len([]rune(s))) * f.Size * 0.5
}

func (r *recorder) FillRect(x, y, w, h float64, fill Color) { r.record("fill", x, y, "") }
func (r *recorder) StrokeRect(x, y, w, h, lw float64, c Color) {
	r.record("stroke", x, y, "")
}

func (r *recorder) DrawImage(path string, x, y, w, h float64) error {
	r.record("image", x, y, path)
	return nil
}

func (r *recorder) ShowPage() {
	r.record("page", 0, 0, "")
	r.page++
}

func (r *recorder) find(kind, text string) []op {
	var found []op
	for _, o := range r.ops {
		if o.kind == kind && o.text == text {
			found = append(found, o)
		}
	}
	return found
}

// titles returns the section and sub-section headings with the given text.
// Field values share their text with some headings but are never bold.
func (r *recorder) titles(text string) []op {
	var found []op
	for _, o := range r.find("text", text) {
		if o.font.Bold && o.font.Size >= 13 {
			found = append(found, o)
		}
	}
	return found
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}
