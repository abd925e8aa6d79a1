package report

import (
	"github.com/matzehuels/kitreport/pkg/inventory"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
	"github.com/matzehuels/kitreport/pkg/render/report/layout"
	"github.com/matzehuels/kitreport/pkg/render/report/styles"
)

const (
	cellPad      = 1.5
	blockedTitle = "ARTICOLI BLOCCATI (Quarantena/Richiamo):"
)

var columnTitles = [inventory.NumCols]string{
	inventory.ColCode:     "Codice",
	inventory.ColName:     "Nome",
	inventory.ColLot:      "Lotto/Ser.",
	inventory.ColExpiry:   "Scadenza",
	inventory.ColDays:     "Gg.Scad.",
	inventory.ColQuantity: "Qta",
	inventory.ColMin:      "Min",
	inventory.ColMax:      "Max",
	inventory.ColStatus:   "Stato",
}

// Relative column widths; they are scaled to the table width.
var columnWeights = [inventory.NumCols]float64{
	inventory.ColCode:     26,
	inventory.ColName:     46,
	inventory.ColLot:      30,
	inventory.ColExpiry:   32,
	inventory.ColDays:     26,
	inventory.ColQuantity: 14,
	inventory.ColMin:      14,
	inventory.ColMax:      14,
	inventory.ColStatus:   43.64,
}

// columnEdges returns the x of every column boundary, NumCols+1 values from
// x to x+width.
func columnEdges(x, width float64) [inventory.NumCols + 1]float64 {
	var total float64
	for _, w := range columnWeights {
		total += w
	}
	var edges [inventory.NumCols + 1]float64
	edges[0] = x
	for i, w := range columnWeights {
		edges[i+1] = edges[i] + width*w/total
	}
	edges[inventory.NumCols] = x + width
	return edges
}

// drawSection draws one kit inside its placement, top to bottom in the
// order the estimator measured it.
func (r *renderer) drawSection(s canvas.Surface, pl layout.Placement, fp layout.Footprint) {
	m := r.met

	s.FillRect(pl.X, pl.Bottom(), pl.Width, pl.Height, styles.Container)
	s.StrokeRect(pl.X, pl.Bottom(), pl.Width, pl.Height, styles.ContainerRim, styles.Border)

	x := pl.X + m.Inset
	w := pl.Width - 2*m.Inset
	y := pl.Y - m.TopPad

	band := fp.CaptionBand(m)
	s.StrokeRect(x, y-band, w, band, styles.CaptionRim, styles.Text)
	top := y - m.CaptionPad/2
	for _, line := range fp.Caption {
		line = styles.FitWidth(r.doc, line, w-4*cellPad, m.CaptionFont)
		s.Text(x+2*cellPad, baseline(top, m.CaptionPitch, m.CaptionFont.Size), line, m.CaptionFont, styles.Text)
		top -= m.CaptionPitch
	}
	y -= band + m.CaptionGap

	edges := columnEdges(x, w)
	s.FillRect(x, y-m.HeaderRow, w, m.HeaderRow, styles.HeaderRow)
	r.drawRow(s, edges, y, m.HeaderRow, columnTitles, m.HeaderFont)
	y -= m.HeaderRow

	for _, it := range fp.Rows {
		s.FillRect(x, y-m.RowPitch, w, m.RowPitch, styles.RowBackground(it.Status()))
		r.drawRow(s, edges, y, m.RowPitch, styles.Cells(it), m.RowFont)
		y -= m.RowPitch
	}

	if len(fp.Blocked) == 0 {
		return
	}
	y -= m.BlockedGap
	s.Text(x, baseline(y, m.BlockedTitlePitch, m.BlockedTitleFont.Size),
		styles.FitWidth(r.doc, blockedTitle, w, m.BlockedTitleFont), m.BlockedTitleFont, styles.Attention)
	y -= m.BlockedTitlePitch
	for _, entry := range fp.Blocked {
		for _, line := range entry.Lines {
			line = styles.FitWidth(r.doc, line, w-m.BlockedIndent, m.BlockedFont)
			s.Text(x+m.BlockedIndent, baseline(y, m.BlockedPitch, m.BlockedFont.Size), line, m.BlockedFont, styles.Attention)
			y -= m.BlockedPitch
		}
	}
}

// drawRow draws one grid row with its top edge at top.
func (r *renderer) drawRow(s canvas.Surface, edges [inventory.NumCols + 1]float64, top, height float64, cells [inventory.NumCols]string, f canvas.Font) {
	bottom := top - height
	left, right := edges[0], edges[inventory.NumCols]
	s.Line(left, top, right, top, styles.GridLine, styles.Grid)
	s.Line(left, bottom, right, bottom, styles.GridLine, styles.Grid)
	for _, e := range edges {
		s.Line(e, top, e, bottom, styles.GridLine, styles.Grid)
	}

	by := baseline(top, height, f.Size)
	for i, cell := range cells {
		avail := edges[i+1] - edges[i] - 2*cellPad
		cell = styles.FitWidth(r.doc, cell, avail, f)
		if cell == "" {
			continue
		}
		s.Text(edges[i]+cellPad, by, cell, f, styles.Text)
	}
}
