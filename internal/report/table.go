package report

import (
	"fmt"
	"math"
)

// CellStyle is applied to every cell of a row.
type CellStyle struct {
	Background Color
	TextColor  Color
	Font       Font
}

// Table is a grid of centred text cells with a header row, body rows and a
// closing total row, each with its own style.
type Table struct {
	Rows      [][]string
	ColWidths []float64
	RowHeight float64

	Header CellStyle
	Body   CellStyle
	Total  CellStyle

	GridWidth float64
	GridColor Color
}

// Wrap returns the table size and checks it against the available space.
func (t *Table) Wrap(availWidth, availHeight float64) (float64, float64, error) {
	var w float64
	for _, cw := range t.ColWidths {
		w += cw
	}
	h := float64(len(t.Rows)) * t.RowHeight

	if w > availWidth {
		return w, h, fmt.Errorf("table width %.1f exceeds available width %.1f", w, availWidth)
	}
	if h > availHeight {
		return w, h, fmt.Errorf("table height %.1f exceeds available height %.1f", h, availHeight)
	}
	return w, h, nil
}

// RowsFitting returns how many whole rows fit into height.
func (t *Table) RowsFitting(height float64) int {
	if height <= 0 {
		return 0
	}
	return int(math.Floor(height/t.RowHeight + 1e-9))
}

func (t *Table) styleFor(row int) CellStyle {
	switch {
	case row == 0:
		return t.Header
	case row == len(t.Rows)-1:
		return t.Total
	default:
		return t.Body
	}
}

// DrawOn draws the table with its bottom-left corner at (x, y).
func (t *Table) DrawOn(c Canvas, x, y float64) {
	t.DrawRows(c, x, y+float64(len(t.Rows))*t.RowHeight, 0, len(t.Rows))
}

// DrawRows draws rows [from, to) downwards from top. Row styles follow the
// row's position in the whole table, so a continued table keeps its total row.
func (t *Table) DrawRows(c Canvas, x, top float64, from, to int) {
	for i := from; i < to; i++ {
		row := t.Rows[i]
		style := t.styleFor(i)
		bottom := top - float64(i-from+1)*t.RowHeight
		baseline := bottom + (t.RowHeight-style.Font.Size*0.7)/2

		cx := x
		for _, width := range t.ColWidths {
			c.FillRect(cx, bottom, width, t.RowHeight, style.Background)
			cx += width
		}

		c.SetFont(style.Font)
		c.SetTextColor(style.TextColor)

		cx = x
		for j, width := range t.ColWidths {
			c.StrokeRect(cx, bottom, width, t.RowHeight, t.GridWidth, t.GridColor)
			if j < len(row) && row[j] != "" {
				c.DrawCentredString(cx+width/2, baseline, row[j])
			}
			cx += width
		}
	}
}
