package layout

import "github.com/matzehuels/kitreport/pkg/render/canvas"

// Geometry is the fixed page template the planner works in.
type Geometry struct {
	PageWidth     float64
	PageHeight    float64
	Margin        float64 // all four sides
	HeaderHeight  float64 // fixed header band below the top margin
	HeaderGap     float64 // space between header rule and first section
	FooterReserve float64 // band above the bottom margin kept for the footer
	Gutter        float64 // horizontal space between the two columns
	MinSlack      float64 // free space required below a placed section
	Spacing       float64 // vertical space between sections in a column
	SafetyPad     float64 // extra space added to every cursor advance
}

// A4 returns the report template on an A4 portrait page.
func A4() Geometry {
	return Geometry{
		PageWidth:     canvas.A4Width,
		PageHeight:    canvas.A4Height,
		Margin:        40,
		HeaderHeight:  64,
		HeaderGap:     8,
		FooterReserve: 90,
		Gutter:        24,
		MinSlack:      40,
		Spacing:       8,
		SafetyPad:     5,
	}
}

// ContentWidth is the page width inside the side margins.
func (g Geometry) ContentWidth() float64 { return g.PageWidth - 2*g.Margin }

// ColumnWidth is the width of one of the two columns.
func (g Geometry) ColumnWidth() float64 { return (g.ContentWidth() - g.Gutter) / 2 }

// ColumnX is the left edge of column c.
func (g Geometry) ColumnX(c Column) float64 {
	return g.Margin + float64(c)*(g.ColumnWidth()+g.Gutter)
}

// HeaderTop is the Y of the top edge of the header band.
func (g Geometry) HeaderTop() float64 { return g.PageHeight - g.Margin }

// StartY is where both column cursors begin on a fresh page.
func (g Geometry) StartY() float64 {
	return g.PageHeight - g.Margin - g.HeaderHeight - g.HeaderGap
}

// Floor is the lowest Y any section may reach: the top of the footer reserve.
func (g Geometry) Floor() float64 { return g.Margin + g.FooterReserve }

// Capacity is the tallest section a fresh page can hold.
func (g Geometry) Capacity() float64 { return g.StartY() - g.Floor() - g.MinSlack }
