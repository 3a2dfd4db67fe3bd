package report

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
	"github.com/cryptfolio/cryptfolio-tools/internal/models"
)

const (
	reportTitle    = "RELATÓRIO DE PORTFÓLIO CRIPTO"
	summaryTitle   = "RESUMO DO PORTFÓLIO"
	protocolsTitle = "ATIVOS LOCALIZADOS EM PROTOCOLOS"
	poolsTitle     = "Pools de Liquidez"
	lendingTitle   = "Protocolos de Empréstimo"
	stakingTitle   = "Staking"

	// Brand is rendered in bold wherever it appears in the footer.
	Brand = "Cryptfolio Arcade"
)

var footerLines = []string{
	"Este relatório apresenta um resumo dos seus ativos em criptomoedas.",
	"Os valores são informativos e não constituem recomendação de investimento.",
	Brand + " - Gerencie seu portfólio cripto com facilidade!",
}

var summaryHeader = []string{"Criptomoeda", "Quantidade", "Valor Unitário (USD)", "Valor Total (USD)"}

// renderer carries the canvas and page count through one report run.
// The vertical cursor is passed between the drawing stages explicitly.
type renderer struct {
	c        Canvas
	layout   Layout
	logoPath string
	now      time.Time
	pages    int
}

// ensureSpace starts a new page when y is below threshold and returns the
// cursor to continue from.
func (r *renderer) ensureSpace(y, threshold float64) float64 {
	if y >= threshold {
		return y
	}
	logger.Debug("Page break at y=%.1f (threshold %.1f)", y, threshold)
	return r.newPage()
}

func (r *renderer) newPage() float64 {
	r.c.ShowPage()
	r.pages++
	return r.layout.Top()
}

func (r *renderer) drawHeader() (float64, error) {
	l := r.layout

	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			x := (l.PageWidth - l.LogoSize) / 2
			y := l.PageHeight - l.Margin - l.LogoSize
			if err := r.c.DrawImage(r.logoPath, x, y, l.LogoSize, l.LogoSize); err != nil {
				return 0, err
			}
		} else {
			logger.Debug("Logo %s not found, skipping header image", r.logoPath)
		}
	}

	y := l.PageHeight - l.Margin - 8.5*cm

	r.c.SetFont(Bold(24))
	r.c.SetTextColor(ColorCyan)
	r.c.DrawCentredString(l.PageWidth/2, y, reportTitle)

	y -= 0.6 * cm
	r.c.SetFont(Regular(10))
	r.c.SetTextColor(ColorGray)
	r.c.DrawCentredString(l.PageWidth/2, y, "Gerado em: "+formatTimestamp(r.now))

	return y - 1*cm, nil
}

func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006") + " às " + t.Format("15:04")
}

// SummaryRows builds the header row, one row per asset and the total row.
func SummaryRows(p *models.Portfolio) [][]string {
	rows := make([][]string, 0, len(p.Assets)+2)
	rows = append(rows, summaryHeader)
	for _, a := range p.Assets {
		rows = append(rows, []string{
			a.Name,
			models.FormatQuantity(a.Quantity),
			models.FormatUSD(a.Price),
			models.FormatUSD(a.Total),
		})
	}
	return append(rows, []string{"", "", "TOTAL:", models.FormatUSD(p.TotalValue())})
}

func (r *renderer) summaryTable(p *models.Portfolio) *Table {
	return &Table{
		Rows:      SummaryRows(p),
		ColWidths: r.layout.SummaryWidths,
		RowHeight: r.layout.TableRowH,
		Header:    CellStyle{Background: ColorPurple, TextColor: ColorWhite, Font: Bold(11)},
		Body:      CellStyle{Background: ColorBeige, TextColor: ColorBlack, Font: Regular(10)},
		Total:     CellStyle{Background: ColorGold, TextColor: ColorBlack, Font: Bold(10)},
		GridWidth: 1,
		GridColor: ColorBlack,
	}
}

// drawSummary draws the holdings table. A table that fits within
// availHeight is kept on one page, moving to a new page when needed. A taller
// table is split at page boundaries without repeating the header.
func (r *renderer) drawSummary(y float64, p *models.Portfolio, availHeight float64) (float64, error) {
	l := r.layout
	t := r.summaryTable(p)

	_, h, err := t.Wrap(l.PageWidth, math.Inf(1))
	if err != nil {
		return y, fmt.Errorf("summary table is too wide: %w", err)
	}

	whole := h <= availHeight
	if whole && y-l.SummaryGap-h < l.Margin {
		y = r.newPage()
	}

	r.c.SetFont(Bold(16))
	r.c.SetTextColor(ColorPurple)
	r.c.DrawString(l.Margin, y, summaryTitle)
	y -= l.SummaryGap

	if whole {
		t.DrawOn(r.c, l.Margin, y-h)
		return y - h - 1*cm, nil
	}

	for from := 0; from < len(t.Rows); {
		n := t.RowsFitting(y - l.Margin)
		if n == 0 {
			y = r.newPage()
			continue
		}

		to := min(from+n, len(t.Rows))
		t.DrawRows(r.c, l.Margin, y, from, to)
		y -= float64(to-from) * t.RowHeight
		from = to

		if from < len(t.Rows) {
			logger.Debug("Summary table continues on page %d at row %d", r.pages+1, from)
			y = r.newPage()
		}
	}

	return y - 1*cm, nil
}

// field draws a bold label and its value at the given offset.
func (r *renderer) field(y, offset float64, label, value string) float64 {
	r.c.SetTextColor(ColorBlack)
	r.c.SetFont(Bold(10))
	r.c.DrawString(r.layout.Margin, y, label)
	if value != "" {
		r.c.SetFont(Regular(10))
		r.c.DrawString(r.layout.Margin+offset, y, value)
	}
	return y - r.layout.LineStep
}

func (r *renderer) subsectionTitle(y float64, title string) float64 {
	r.c.SetFont(Bold(13))
	r.c.SetTextColor(ColorGreen)
	r.c.DrawString(r.layout.Margin, y, title)
	return y - 0.6*cm
}

func (r *renderer) drawProtocols(y float64, p *models.Portfolio) float64 {
	l := r.layout
	th := l.Thresholds

	y = r.ensureSpace(y, th.ProtocolsSection)

	r.c.SetFont(Bold(16))
	r.c.SetTextColor(ColorPurple)
	r.c.DrawString(l.Margin, y, protocolsTitle)
	y -= 1 * cm

	y = r.drawPools(y, p.Pools)
	y -= l.SectionGap

	y = r.drawLending(y, p.Lending)
	y -= l.SectionGap

	return r.drawStaking(y, p.Staking)
}

func (r *renderer) drawPools(y float64, pools []models.Pool) float64 {
	l := r.layout
	off := l.Offsets.Pools

	y = r.subsectionTitle(y, poolsTitle)

	for _, pool := range pools {
		y = r.ensureSpace(y, l.Thresholds.PoolRecord)

		y = r.field(y, off, "Protocolo:", pool.Protocol)
		y = r.field(y, off, "Tipo:", "Pool de Liquidez")
		y = r.field(y, off, "Tokens Alocados:", "")

		r.c.SetFont(Regular(10))
		for _, token := range pool.Tokens {
			r.c.DrawString(l.Margin+l.BulletIndent, y, "• "+token)
			y -= l.LineStep
		}

		y = r.field(y, off, "Carteira:", pool.Wallet)
		y -= l.RecordGap - l.LineStep
	}

	return y
}

func (r *renderer) drawLending(y float64, positions []models.Lending) float64 {
	l := r.layout
	off := l.Offsets.Lending

	y = r.ensureSpace(y, l.Thresholds.LendingSection)
	y = r.subsectionTitle(y, lendingTitle)

	for _, lend := range positions {
		y = r.ensureSpace(y, l.Thresholds.LendingRecord)

		y = r.field(y, off, "Protocolo:", lend.Protocol)
		y = r.field(y, off, "Tipo:", "Empréstimo")
		y = r.field(y, off, "Depositado:", lend.Deposited)
		y = r.field(y, off, "Emprestado:", lend.Borrowed)
		y = r.field(y, off, "Carteira:", lend.Wallet)
		y -= l.RecordGap - l.LineStep
	}

	return y
}

func (r *renderer) drawStaking(y float64, positions []models.Staking) float64 {
	l := r.layout
	off := l.Offsets.Staking

	y = r.ensureSpace(y, l.Thresholds.StakingSection)
	y = r.subsectionTitle(y, stakingTitle)

	for _, stake := range positions {
		y = r.ensureSpace(y, l.Thresholds.StakingRecord)

		y = r.field(y, off, "Protocolo:", stake.Protocol)
		y = r.field(y, off, "Tipo:", "Staking")
		y = r.field(y, off, "Criptomoeda em Stake:", stake.Stake)
		y = r.field(y, off, "Carteira:", stake.Wallet)
		y -= l.RecordGap - l.LineStep
	}

	return y
}

// drawFooter writes the disclaimer lines bottom-up from the bottom margin.
// The brand name is set in bold inside its line.
func (r *renderer) drawFooter() {
	l := r.layout
	regular := Regular(8)
	bold := Bold(8)

	r.c.SetTextColor(ColorGray)

	y := l.Margin
	for i := len(footerLines) - 1; i >= 0; i-- {
		line := footerLines[i]

		before, after, found := strings.Cut(line, Brand)
		if !found {
			r.c.SetFont(regular)
			r.c.DrawCentredString(l.PageWidth/2, y, line)
			y += l.FooterStep
			continue
		}

		wBefore := r.c.StringWidth(before, regular)
		wBrand := r.c.StringWidth(Brand, bold)
		wAfter := r.c.StringWidth(after, regular)
		x := (l.PageWidth - (wBefore + wBrand + wAfter)) / 2

		if before != "" {
			r.c.SetFont(regular)
			r.c.DrawString(x, y, before)
		}
		r.c.SetFont(bold)
		r.c.DrawString(x+wBefore, y, Brand)
		if after != "" {
			r.c.SetFont(regular)
			r.c.DrawString(x+wBefore+wBrand, y, after)
		}

		y += l.FooterStep
	}
}
