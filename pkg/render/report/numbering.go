package report

import (
	"fmt"

	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/render/report/styles"
)

// numberPages reopens every page in order and stamps the page number and
// the generation time at the bottom.
func (r *renderer) numberPages() error {
	g := r.geo
	n := r.doc.PageCount()
	stamp := "Generato: " + styles.Stamp(r.opts.GeneratedAt)
	y := g.Margin / 2

	for i := 0; i < n; i++ {
		s, err := r.doc.Reopen(i)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "reopen page %d", i+1)
		}
		label := fmt.Sprintf("Pagina %d di %d", i+1, n)
		s.Text(r.centerX(label, footerFont), y, label, footerFont, styles.Text)
		s.Text(g.Margin, y, stamp, footerFont, styles.Text)
		if err := s.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "close page %d", i+1)
		}
	}
	return nil
}
