package report

import (
	"fmt"

	"github.com/matzehuels/kitreport/pkg/render/canvas"
	"github.com/matzehuels/kitreport/pkg/render/report/styles"
)

const (
	logoMaxWidth  = 120.0
	logoMaxHeight = 40.0
	infoWidth     = 140.0
)

var titleLines = [...]string{
	"CHECK VERIFICA CONTENUTO MINIMO",
	"CASSETTA DI PRIMO SOCCORSO",
}

var (
	revisionFont = canvas.Regular(10)
	titleFont    = canvas.Bold(12)
	subtitleFont = canvas.Regular(6.5)
	infoFont     = canvas.Regular(8)
)

func (r *renderer) subtitle() [2]string {
	return [2]string{
		"Il presente modulo è utilizzato per verificare il contenuto minimo delle cassette di primo soccorso,",
		fmt.Sprintf("come indicato dal D.M. 388/2003, installate presso l'azienda %s.", r.opts.Organization),
	}
}

// drawHeader draws the fixed header band at the top of s's page.
func (r *renderer) drawHeader(s canvas.Surface) {
	g := r.geo
	top := g.HeaderTop()
	right := g.PageWidth - g.Margin

	if r.logo != nil {
		w, h := canvas.FitWithin(float64(r.logo.Width()), float64(r.logo.Height()), logoMaxWidth, logoMaxHeight)
		s.Image(r.logo, g.Margin, top-h, w, h)
	} else {
		s.StrokeRect(g.Margin, top-logoMaxHeight, logoMaxWidth, logoMaxHeight, styles.Rule, styles.Placeholder)
	}

	rev := r.opts.Revision
	s.Text(right-r.doc.StringWidth(rev, revisionFont), top-10, rev, revisionFont, styles.Text)

	for i, line := range titleLines {
		s.Text(r.centerX(line, titleFont), top-14-14*float64(i), line, titleFont, styles.Text)
	}
	for i, line := range r.subtitle() {
		s.Text(r.centerX(line, subtitleFont), top-47-8*float64(i), line, subtitleFont, styles.Text)
	}

	info := []string{
		"Sede: " + r.opts.Site,
		"Data: " + styles.LongDate(r.opts.Date),
		"Operatore: " + r.opts.Operator,
	}
	x := right - infoWidth
	for i, line := range info {
		line = styles.FitWidth(r.doc, line, infoWidth, infoFont)
		s.Text(x, top-20-9*float64(i), line, infoFont, styles.Text)
	}

	s.Line(g.Margin, top-g.HeaderHeight, right, top-g.HeaderHeight, styles.Rule, styles.Text)
}
