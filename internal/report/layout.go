package report

// cm is one centimetre in points.
const cm = 72.0 / 2.54

// Thresholds are the minimum cursor heights, measured from the page bottom,
// required before a block is drawn. Below them a new page is started.
// They are fixed per block and not derived from the block's real height.
type Thresholds struct {
	ProtocolsSection float64
	PoolRecord       float64
	LendingSection   float64
	LendingRecord    float64
	StakingSection   float64
	StakingRecord    float64
}

// DefaultThresholds returns the pagination table of the portfolio report.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ProtocolsSection: 5 * cm,
		PoolRecord:       4 * cm,
		LendingSection:   5 * cm,
		LendingRecord:    4 * cm,
		StakingSection:   5 * cm,
		StakingRecord:    4 * cm,
	}
}

// LabelOffsets is the horizontal gap between a field label and its value.
// Each protocol sub-section keeps its own offset.
type LabelOffsets struct {
	Pools   float64
	Lending float64
	Staking float64
}

// Layout holds the page geometry and spacing constants.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	Thresholds Thresholds
	Offsets    LabelOffsets

	LogoSize      float64
	LineStep      float64
	RecordGap     float64
	SectionGap    float64
	FooterStep    float64
	BulletIndent  float64
	SummaryGap    float64
	TableRowH     float64
	SummaryWidths []float64
}

// A4Layout returns the layout for an A4 portrait page with 2 cm margins.
// SummaryWidths fill the A4 text width and must be recomputed for other sizes.
func A4Layout() Layout {
	return Layout{
		PageWidth:  595.28,
		PageHeight: 841.89,
		Margin:     2 * cm,

		Thresholds: DefaultThresholds(),
		Offsets: LabelOffsets{
			Pools:   2 * cm,
			Lending: 2.5 * cm,
			Staking: 4 * cm,
		},

		LogoSize:      8 * cm,
		LineStep:      0.5 * cm,
		RecordGap:     0.9 * cm,
		SectionGap:    0.3 * cm,
		FooterStep:    0.4 * cm,
		BulletIndent:  0.5 * cm,
		SummaryGap:    0.8 * cm,
		TableRowH:     18,
		SummaryWidths: []float64{4.25 * cm, 3.5 * cm, 4.25 * cm, 4.25 * cm},
	}
}

// Top is the cursor position at the top margin of a fresh page.
func (l Layout) Top() float64 {
	return l.PageHeight - l.Margin
}

// AvailableHeight is the usable height between the top and bottom margins.
func (l Layout) AvailableHeight() float64 {
	return l.PageHeight - 2*l.Margin
}
