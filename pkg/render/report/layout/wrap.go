package layout

import (
	"strings"

	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

// WrapSafety is subtracted from the available width before a line is
// accepted, so measured text never touches the edge of its box.
const WrapSafety = 15.0

// Wrap breaks text into lines no wider than maxWidth - WrapSafety when
// measured in font f. Words are taken greedily; a word that does not fit on
// its own becomes a single overflowing line rather than being cut. Runs of
// whitespace collapse to single spaces, and blank text yields no lines.
func Wrap(m canvas.Measurer, text string, maxWidth float64, f canvas.Font) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	limit := maxWidth - WrapSafety
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if m.StringWidth(candidate, f) <= limit {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
