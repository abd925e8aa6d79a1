package inventory

// Status is the compliance classification of an item. The string value is the
// label printed in the report.
type Status string

const (
	StatusQuarantine    Status = "QUARANTENA"
	StatusRecall        Status = "RICHIAMO"
	StatusExpired       Status = "SCADUTO"
	StatusExpiring      Status = "IN_SCADENZA"
	StatusNotApplicable Status = "N/D"
	StatusOK            Status = "OK"
)

// NearExpiryDays is the window, in days, in which a known expiry makes an
// item IN_SCADENZA instead of OK.
const NearExpiryDays = 30

// Blocking reports whether the status removes the item from the FEFO table.
func (s Status) Blocking() bool {
	return s == StatusQuarantine || s == StatusRecall
}

// Alert reports whether the status is printed on the alert background.
func (s Status) Alert() bool {
	return s == StatusExpired || s.Blocking()
}

// Classify is the status rule table. It is a pure function of its inputs:
// the blocking flags win over anything expiry-derived, and the "N/D" marker
// only matters when the expiry is not known.
func Classify(quarantined, recalled, expiryKnown bool, days int, notApplicable bool) Status {
	switch {
	case quarantined:
		return StatusQuarantine
	case recalled:
		return StatusRecall
	case expiryKnown && days <= 0:
		return StatusExpired
	case expiryKnown && days <= NearExpiryDays:
		return StatusExpiring
	case !expiryKnown && notApplicable:
		return StatusNotApplicable
	default:
		return StatusOK
	}
}
