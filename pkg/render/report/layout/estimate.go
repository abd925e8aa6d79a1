package layout

import (
	"github.com/matzehuels/kitreport/pkg/inventory"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

// Metrics is the vertical anatomy of a kit table. The estimator sums these
// values and the renderer walks them top to bottom, so both always agree.
type Metrics struct {
	Inset        float64 // container edge to table edge, left and right
	TopPad       float64 // container top to caption band
	CaptionFont  canvas.Font
	CaptionPitch float64
	CaptionPad   float64 // extra height of the caption band around its lines
	CaptionGap   float64 // caption band to header row
	HeaderFont   canvas.Font
	HeaderRow    float64
	RowFont      canvas.Font
	RowPitch     float64

	BlockedGap        float64 // table bottom to blocked title
	BlockedTitleFont  canvas.Font
	BlockedTitlePitch float64
	BlockedFont       canvas.Font
	BlockedPitch      float64
	BlockedIndent     float64

	BottomPad float64 // last line to container bottom
	Margin    float64 // added to every estimate
}

// DefaultMetrics returns the metrics used by the report.
func DefaultMetrics() Metrics {
	return Metrics{
		Inset:        4,
		TopPad:       4,
		CaptionFont:  canvas.Bold(8),
		CaptionPitch: 10,
		CaptionPad:   4,
		CaptionGap:   3,
		HeaderFont:   canvas.Bold(5),
		HeaderRow:    10,
		RowFont:      canvas.Regular(5.5),
		RowPitch:     9,

		BlockedGap:        6,
		BlockedTitleFont:  canvas.Bold(7),
		BlockedTitlePitch: 10,
		BlockedFont:       canvas.Regular(7),
		BlockedPitch:      9,
		BlockedIndent:     6,

		BottomPad: 4,
		Margin:    4,
	}
}

// BlockedEntry is one item listed under the blocked title, pre-wrapped.
type BlockedEntry struct {
	Item  *inventory.Item
	Lines []string
}

// Footprint is everything the renderer needs to draw a section in exactly
// the space that was reserved for it.
type Footprint struct {
	Section *inventory.Section
	Caption []string          // wrapped caption, at least one line
	Rows    []*inventory.Item // table rows in FEFO order
	Blocked []BlockedEntry
	Height  float64
}

// CaptionBand is the height of the boxed caption.
func (fp Footprint) CaptionBand(m Metrics) float64 {
	return float64(len(fp.Caption))*m.CaptionPitch + m.CaptionPad
}

// BlockedLabel is the free-text line listing a blocked item.
func BlockedLabel(it *inventory.Item) string {
	return "• " + it.DisplayString() + " - " + string(it.Status())
}

// Estimator predicts section footprints for a fixed column width.
type Estimator struct {
	measurer canvas.Measurer
	metrics  Metrics
	width    float64
}

// NewEstimator returns an estimator for sections drawn in a column of the
// given width.
func NewEstimator(m canvas.Measurer, metrics Metrics, columnWidth float64) *Estimator {
	return &Estimator{measurer: m, metrics: metrics, width: columnWidth}
}

// TableWidth is the width of the table inside the container.
func (e *Estimator) TableWidth() float64 { return e.width - 2*e.metrics.Inset }

// Metrics returns the metrics the estimator was built with.
func (e *Estimator) Metrics() Metrics { return e.metrics }

// Measure wraps the section's free text and computes its height. It never
// returns less than the renderer will draw.
func (e *Estimator) Measure(s *inventory.Section) Footprint {
	m := e.metrics
	tw := e.TableWidth()

	fp := Footprint{
		Section: s,
		Caption: Wrap(e.measurer, s.Caption(), tw, m.CaptionFont),
		Rows:    s.FEFO(),
	}
	if len(fp.Caption) == 0 {
		fp.Caption = []string{""}
	}

	h := m.TopPad + fp.CaptionBand(m) + m.CaptionGap
	h += m.HeaderRow + float64(len(fp.Rows))*m.RowPitch

	if blocked := s.Blocked(); len(blocked) > 0 {
		h += m.BlockedGap + m.BlockedTitlePitch
		for _, it := range blocked {
			lines := Wrap(e.measurer, BlockedLabel(it), tw-m.BlockedIndent, m.BlockedFont)
			fp.Blocked = append(fp.Blocked, BlockedEntry{Item: it, Lines: lines})
			h += float64(len(lines)) * m.BlockedPitch
		}
	}

	fp.Height = h + m.BottomPad + m.Margin
	return fp
}
