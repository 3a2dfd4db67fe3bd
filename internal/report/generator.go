// Package report lays out the portfolio PDF report.
package report

import (
	"fmt"
	"time"

	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
	"github.com/cryptfolio/cryptfolio-tools/internal/models"
)

// Generator renders a portfolio into a fixed-structure, multi-page report.
type Generator struct {
	Layout   Layout
	LogoPath string
	Now      func() time.Time
}

// Result describes a rendered report.
type Result struct {
	Pages  int
	Cursor float64
}

// NewGenerator creates an A4 generator that places logoPath in the header
// when that file exists.
func NewGenerator(logoPath string) *Generator {
	return &Generator{
		Layout:   A4Layout(),
		LogoPath: logoPath,
		Now:      time.Now,
	}
}

// Render draws header, summary, protocol sections and footer onto c.
func (g *Generator) Render(c Canvas, p *models.Portfolio) (Result, error) {
	r := &renderer{
		c:        c,
		layout:   g.Layout,
		logoPath: g.LogoPath,
		now:      g.Now(),
		pages:    1,
	}

	y, err := r.drawHeader()
	if err != nil {
		return Result{}, fmt.Errorf("failed to draw header: %w", err)
	}

	y, err = r.drawSummary(y, p, g.Layout.AvailableHeight())
	if err != nil {
		return Result{}, err
	}

	y = r.drawProtocols(y, p)
	r.drawFooter()

	return Result{Pages: r.pages, Cursor: y}, nil
}

// WriteFile renders p into a PDF document at path.
func (g *Generator) WriteFile(path string, p *models.Portfolio) (Result, error) {
	c := NewPDFCanvas()

	res, err := g.Render(c, p)
	if err != nil {
		return res, err
	}

	if err := c.Save(path); err != nil {
		return res, err
	}

	logger.Info("PDF Gerado com sucesso: %s (%d páginas)", path, res.Pages)
	return res, nil
}
