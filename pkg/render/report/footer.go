package report

import (
	"github.com/matzehuels/kitreport/pkg/render/canvas"
	"github.com/matzehuels/kitreport/pkg/render/report/styles"
)

const (
	signatureMaxWidth  = 180.0
	signatureMaxHeight = 60.0
	signatureBlock     = 200.0
	signatureLine      = 150.0
)

var footerFont = canvas.Regular(10)

// drawFooter signs the last page: label, signature image or a blank line
// to sign on, and the operator name.
func (r *renderer) drawFooter(s canvas.Surface) {
	g := r.geo
	y := g.Floor()
	x := g.PageWidth - g.Margin - signatureBlock

	s.Text(x, y, "Firma operatore:", footerFont, styles.Text)
	if r.signature != nil {
		w, h := canvas.FitWithin(float64(r.signature.Width()), float64(r.signature.Height()), signatureMaxWidth, signatureMaxHeight)
		s.Image(r.signature, x, y-6-h, w, h)
	} else {
		s.Line(x, y-30, x+signatureLine, y-30, styles.Rule, styles.Text)
	}
	name := styles.FitWidth(r.doc, r.opts.Operator, signatureBlock, footerFont)
	s.Text(x, y-78, name, footerFont, styles.Text)
}
