package styles

import (
	"fmt"
	"time"
	"unicode"
)

var weekdays = [...]string{
	time.Sunday:    "domenica",
	time.Monday:    "lunedì",
	time.Tuesday:   "martedì",
	time.Wednesday: "mercoledì",
	time.Thursday:  "giovedì",
	time.Friday:    "venerdì",
	time.Saturday:  "sabato",
}

var months = [...]string{
	time.January:   "gennaio",
	time.February:  "febbraio",
	time.March:     "marzo",
	time.April:     "aprile",
	time.May:       "maggio",
	time.June:      "giugno",
	time.July:      "luglio",
	time.August:    "agosto",
	time.September: "settembre",
	time.October:   "ottobre",
	time.November:  "novembre",
	time.December:  "dicembre",
}

// LongDate formats t the way the header prints it, in Italian with the
// first letter capitalized: "Lunedì 19 ottobre 2026".
func LongDate(t time.Time) string {
	day := []rune(weekdays[t.Weekday()])
	day[0] = unicode.ToUpper(day[0])
	return fmt.Sprintf("%s %d %s %d", string(day), t.Day(), months[t.Month()], t.Year())
}

// Stamp formats the generation timestamp printed on every page.
func Stamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
