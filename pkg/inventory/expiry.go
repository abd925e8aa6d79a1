package inventory

import (
	"strings"
	"time"
)

const (
	// DateLayout is the only accepted expiry format (dd/MM/yyyy).
	DateLayout = "02/01/2006"

	// NotApplicable marks an item that has no expiry by nature.
	NotApplicable = "N/D"

	// UnknownDays is the days-to-expiry sentinel for a missing, unparseable
	// or not-applicable expiry.
	UnknownDays = -1
)

// daysUntil returns the whole calendar days from asOf to the expiry text and
// whether the expiry could be parsed. Malformed dates are not an error: they
// degrade to (UnknownDays, false) so one dirty record can not stop a report.
func daysUntil(expiry string, asOf time.Time) (int, bool) {
	expiry = strings.TrimSpace(expiry)
	if expiry == "" || expiry == NotApplicable {
		return UnknownDays, false
	}
	due, err := time.ParseInLocation(DateLayout, expiry, time.UTC)
	if err != nil {
		return UnknownDays, false
	}
	from := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(from).Hours() / 24), true
}
