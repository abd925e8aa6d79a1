package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/kitreport/pkg/errors"
)

// Column identifies one of the two page columns.
type Column int

const (
	Left Column = iota
	Right
)

func (c Column) other() Column { return 1 - c }

func (c Column) String() string {
	if c == Right {
		return "right"
	}
	return "left"
}

type state int

const (
	hasRoom state = iota
	needsOtherColumn
	needsNewPage
)

func (s state) String() string {
	switch s {
	case hasRoom:
		return "has-room"
	case needsOtherColumn:
		return "needs-other-column"
	default:
		return "needs-new-page"
	}
}

// Pager finishes the current page and opens the next one, header included.
type Pager interface {
	NewPage() error
}

// PagerFunc adapts a function to [Pager].
type PagerFunc func() error

// NewPage calls f.
func (f PagerFunc) NewPage() error { return f() }

// Placement is where a section was put. Y is the top edge; the section
// occupies [Y-Height, Y].
type Placement struct {
	Page   int
	Column Column
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bottom is the lowest Y the section occupies.
func (p Placement) Bottom() float64 { return p.Y - p.Height }

// Overlaps reports whether p and q share any area on the same page.
func (p Placement) Overlaps(q Placement) bool {
	if p.Page != q.Page || p.Column != q.Column {
		return false
	}
	return p.Bottom() < q.Y && q.Bottom() < p.Y
}

// Planner assigns sections to columns and pages. The first page is assumed
// to be open already; the planner calls its pager for every page after that.
type Planner struct {
	geo     Geometry
	pager   Pager
	page    int
	cursors [2]float64
	column  Column
	placed  []Placement
}

// NewPlanner returns a planner positioned at the top of the first page.
func NewPlanner(g Geometry, p Pager) *Planner {
	pl := &Planner{geo: g, pager: p}
	pl.reset()
	return pl
}

func (p *Planner) reset() {
	p.cursors = [2]float64{p.geo.StartY(), p.geo.StartY()}
	p.column = Left
}

// Page is the zero-based index of the current page.
func (p *Planner) Page() int { return p.page }

// Pages is the number of pages used so far.
func (p *Planner) Pages() int { return p.page + 1 }

// Column is the column the last section went into.
func (p *Planner) Column() Column { return p.column }

// Cursor is the next free Y in column c.
func (p *Planner) Cursor(c Column) float64 { return p.cursors[c] }

// Available is the space left in column c above the footer reserve.
func (p *Planner) Available(c Column) float64 {
	return p.cursors[c] - p.geo.Floor()
}

// Placements returns every placement made so far, in order.
func (p *Planner) Placements() []Placement {
	return append([]Placement(nil), p.placed...)
}

func (p *Planner) fits(c Column, height float64) bool {
	return p.Available(c) >= height+p.geo.MinSlack
}

// evaluate picks the column with more room (left on a tie) and reports
// whether the section fits there, fits in the other column, or needs a page.
func (p *Planner) evaluate(height float64) (state, Column) {
	candidate := Left
	if p.cursors[Right] > p.cursors[Left] {
		candidate = Right
	}
	if p.fits(candidate, height) {
		return hasRoom, candidate
	}
	if p.fits(candidate.other(), height) {
		return needsOtherColumn, candidate.other()
	}
	return needsNewPage, candidate
}

// Place reserves height points for the next section. A section taller than
// a fresh page can hold is reported as ErrCodeLayoutOverflow before any new
// page is opened.
func (p *Planner) Place(height float64) (Placement, error) {
	if height < 0 || math.IsNaN(height) {
		return Placement{}, errors.New(errors.ErrCodeInternal, "invalid section height %v", height)
	}
	if height > p.geo.Capacity() {
		return Placement{}, errors.New(errors.ErrCodeLayoutOverflow,
			"section needs %.1fpt but a page holds at most %.1fpt", height, p.geo.Capacity())
	}

	for attempt := 0; ; attempt++ {
		st, col := p.evaluate(height)
		switch st {
		case hasRoom, needsOtherColumn:
			return p.commit(col, height), nil
		}
		if attempt > 0 {
			return Placement{}, errors.New(errors.ErrCodeInternal,
				"section of %.1fpt does not fit on a fresh page", height)
		}
		if err := p.pager.NewPage(); err != nil {
			return Placement{}, fmt.Errorf("open page %d: %w", p.page+2, err)
		}
		p.page++
		p.reset()
	}
}

func (p *Planner) commit(c Column, height float64) Placement {
	pl := Placement{
		Page:   p.page,
		Column: c,
		X:      p.geo.ColumnX(c),
		Y:      p.cursors[c],
		Width:  p.geo.ColumnWidth(),
		Height: height,
	}
	p.cursors[c] -= height + p.geo.Spacing + p.geo.SafetyPad
	p.column = c
	p.placed = append(p.placed, pl)
	return pl
}
