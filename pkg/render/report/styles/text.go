package styles

import (
	"github.com/matzehuels/kitreport/pkg/inventory"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

const ellipsis = "..."

// Per-column character budgets for table cells. Zero means the value is
// printed as is.
var cellBudget = [inventory.NumCols]int{
	inventory.ColCode:   8,
	inventory.ColName:   18,
	inventory.ColLot:    9,
	inventory.ColExpiry: 10,
}

// Truncate shortens s to at most budget runes, replacing the tail with
// "..." when it had to cut.
func Truncate(s string, budget int) string {
	r := []rune(s)
	if budget <= 0 || len(r) <= budget {
		return s
	}
	if budget <= len(ellipsis) {
		return string(r[:budget])
	}
	return string(r[:budget-len(ellipsis)]) + ellipsis
}

// Cells returns the item's table row shortened to the column budgets.
func Cells(it *inventory.Item) [inventory.NumCols]string {
	row := it.Row()
	for i, b := range cellBudget {
		row[i] = Truncate(row[i], b)
	}
	return row
}

// FitWidth shortens s with "..." until it measures at most width points
// in font f. It returns "" when not even the ellipsis fits.
func FitWidth(m canvas.Measurer, s string, width float64, f canvas.Font) string {
	if m.StringWidth(s, f) <= width {
		return s
	}
	r := []rune(s)
	for n := len(r) - 1; n >= 0; n-- {
		cut := string(r[:n]) + ellipsis
		if m.StringWidth(cut, f) <= width {
			return cut
		}
	}
	return ""
}
