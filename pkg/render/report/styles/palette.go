// Package styles holds the report's colors, cell text shortening and the
// date formats printed in headers and footers.
package styles

import (
	"github.com/matzehuels/kitreport/pkg/inventory"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

// Report colors.
var (
	AlertRow    = canvas.Color{R: 255, G: 200, B: 200}
	WarningRow  = canvas.Color{R: 255, G: 255, B: 200}
	PlainRow    = canvas.White
	HeaderRow   = canvas.Color{R: 230, G: 230, B: 230}
	Container   = canvas.Color{R: 248, G: 248, B: 248}
	Border      = canvas.Color{R: 200, G: 200, B: 200}
	Grid        = canvas.Color{R: 150, G: 150, B: 150}
	Attention   = canvas.Red
	Placeholder = canvas.LightGray
	Text        = canvas.Black
)

// Stroke widths in points.
const (
	ContainerRim = 0.8
	GridLine     = 0.3
	CaptionRim   = 0.6
	Rule         = 0.5
)

// RowBackground is the fill of a table row for an item in status s.
func RowBackground(s inventory.Status) canvas.Color {
	switch {
	case s.Alert():
		return AlertRow
	case s == inventory.StatusExpiring:
		return WarningRow
	default:
		return PlainRow
	}
}
