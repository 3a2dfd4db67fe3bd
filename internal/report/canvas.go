package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Canvas is the drawing surface the report is laid out on.
// Coordinates are points with the origin at the bottom-left of the page,
// so the layout cursor decreases as content is added.
type Canvas interface {
	PageSize() (width, height float64)
	SetFont(f Font)
	SetTextColor(c Color)
	DrawString(x, y float64, s string)
	DrawCentredString(x, y float64, s string)
	StringWidth(s string, f Font) float64
	FillRect(x, y, w, h float64, fill Color)
	StrokeRect(x, y, w, h, lineWidth float64, stroke Color)
	DrawImage(path string, x, y, w, h float64) error
	ShowPage()
}

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// Hex parses a #RRGGBB colour and panics on malformed input.
func Hex(s string) Color {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		panic(fmt.Sprintf("invalid colour %q", s))
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

var (
	ColorPurple = Hex("#9945FF")
	ColorCyan   = Hex("#00CED1")
	ColorGreen  = Hex("#14F195")
	ColorGold   = Hex("#FFD700")
	ColorGray   = Hex("#808080")
	ColorBeige  = Hex("#F5F5DC")
	ColorWhite  = Hex("#FFFFFF")
	ColorBlack  = Hex("#000000")
)

// Font selects one of the core Helvetica faces.
type Font struct {
	Bold bool
	Size float64
}

func Regular(size float64) Font { return Font{Size: size} }
func Bold(size float64) Font    { return Font{Bold: true, Size: size} }

func (f Font) String() string {
	if f.Bold {
		return fmt.Sprintf("Helvetica-Bold %g", f.Size)
	}
	return fmt.Sprintf("Helvetica %g", f.Size)
}
