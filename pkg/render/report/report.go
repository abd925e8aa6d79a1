// Package report draws the first-aid kit compliance report.
//
// [Generate] lays out one table per kit in two columns on A4 pages, repeats
// the fixed header on every page, signs the last page and finally stamps
// "Pagina i di N" on every page once N is known. It draws on any
// [canvas.Document]; the pipeline uses the PDF backend from the sink package.
//
// Layout and drawing share one [layout.Footprint] per kit, so a table is
// always drawn inside the space the planner reserved for it.
package report

import (
	"fmt"
	"image"
	"time"

	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/inventory"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
	"github.com/matzehuels/kitreport/pkg/render/report/layout"
)

// DefaultOrganization is printed in the subtitle when none is configured.
const DefaultOrganization = "ISOKIT Srl"

// Options carries the header and footer content.
type Options struct {
	Site         string
	Operator     string
	Revision     string
	Organization string
	Date         time.Time // printed in the header
	GeneratedAt  time.Time // printed next to the page numbers
	Logo         image.Image
	Signature    image.Image
}

// Result describes what was drawn.
type Result struct {
	Pages      int
	Sections   int
	Items      int
	Blocked    int
	Placements []layout.Placement
}

type renderer struct {
	doc       canvas.Document
	geo       layout.Geometry
	met       layout.Metrics
	opts      Options
	logo      *canvas.Image
	signature *canvas.Image
}

// Generate draws sections onto doc. It leaves no surface open on any path;
// saving the document is up to the caller.
func Generate(doc canvas.Document, sections []*inventory.Section, opts Options) (res *Result, err error) {
	if opts.Organization == "" {
		opts.Organization = DefaultOrganization
	}
	r := &renderer{doc: doc, geo: layout.A4(), met: layout.DefaultMetrics(), opts: opts}
	if err := r.registerImages(); err != nil {
		return nil, err
	}

	p := &pages{doc: doc, header: r.drawHeader}
	defer func() {
		if cerr := p.close(); cerr != nil && err == nil {
			res, err = nil, errors.Wrap(errors.ErrCodeRender, cerr, "close page")
		}
	}()
	if err := p.NewPage(); err != nil {
		return nil, err
	}

	est := layout.NewEstimator(doc, r.met, r.geo.ColumnWidth())
	planner := layout.NewPlanner(r.geo, p)
	res = &Result{Sections: len(sections)}
	for _, s := range sections {
		fp := est.Measure(s)
		pl, err := planner.Place(fp.Height)
		if err != nil {
			return nil, fmt.Errorf("kit %q: %w", s.Title, err)
		}
		r.drawSection(p.current, pl, fp)
		res.Items += s.Len()
		res.Blocked += len(fp.Blocked)
	}

	r.drawFooter(p.current)
	if err := p.close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "close last page")
	}
	if err := r.numberPages(); err != nil {
		return nil, err
	}

	res.Pages = doc.PageCount()
	res.Placements = planner.Placements()
	return res, nil
}

// pages keeps at most one surface open and redraws the header on every
// page it opens. It is the planner's pager.
type pages struct {
	doc     canvas.Document
	current canvas.Surface
	header  func(canvas.Surface)
}

func (p *pages) NewPage() error {
	if err := p.close(); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "close page")
	}
	s, err := p.doc.NewPage()
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "open page %d", p.doc.PageCount()+1)
	}
	p.current = s
	p.header(s)
	return nil
}

func (p *pages) close() error {
	if p.current == nil {
		return nil
	}
	s := p.current
	p.current = nil
	return s.Close()
}

// baseline places text of the given size vertically centred in a line box
// of height pitch whose top edge is at top.
func baseline(top, pitch, size float64) float64 {
	return top - pitch + (pitch-size)/2 + 0.22*size
}

// centerX is the x at which s starts when centred on the page.
func (r *renderer) centerX(s string, f canvas.Font) float64 {
	return (r.geo.PageWidth - r.doc.StringWidth(s, f)) / 2
}
