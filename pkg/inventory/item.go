package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ItemSpec carries the raw fields of an item as they arrive from an input
// source. It is consumed by [NewItem].
type ItemSpec struct {
	Code        string
	Name        string
	Lot         string
	Serial      string
	Quantity    int
	MaxQuantity int
	MinQuantity int
	Expiry      string
	Note        string
	Quarantined bool
	Recalled    bool
}

// Item is one inventory entry of a kit.
//
// Days-to-expiry are fixed at construction. The status is derived on read by
// [Item.Status], so the only state that can change after construction is the
// pair of blocking flags, and nothing derived from them is cached.
type Item struct {
	Code        string
	Name        string
	Lot         string
	Serial      string
	Quantity    int
	MaxQuantity int
	MinQuantity int
	Expiry      string
	Note        string

	days        int
	expiryKnown bool
	quarantined bool
	recalled    bool
}

// NewItem builds an item from spec, computing days-to-expiry against asOf.
func NewItem(spec ItemSpec, asOf time.Time) *Item {
	it := &Item{
		Code:        spec.Code,
		Name:        spec.Name,
		Lot:         spec.Lot,
		Serial:      spec.Serial,
		Quantity:    spec.Quantity,
		MaxQuantity: spec.MaxQuantity,
		MinQuantity: spec.MinQuantity,
		Expiry:      strings.TrimSpace(spec.Expiry),
		Note:        spec.Note,
		quarantined: spec.Quarantined,
		recalled:    spec.Recalled,
	}
	it.days, it.expiryKnown = daysUntil(it.Expiry, asOf)
	return it
}

// DaysToExpiry returns the days left before expiry, negative once expired.
// It returns UnknownDays when the expiry is missing, malformed or "N/D";
// use [Item.ExpiryKnown] to tell that apart from an item expired yesterday.
func (it *Item) DaysToExpiry() int {
	if !it.expiryKnown {
		return UnknownDays
	}
	return it.days
}

// ExpiryKnown reports whether the expiry parsed to a date.
func (it *Item) ExpiryKnown() bool { return it.expiryKnown }

// ExpiryNotApplicable reports whether the expiry is the explicit "N/D" marker.
func (it *Item) ExpiryNotApplicable() bool { return it.Expiry == NotApplicable }

// Quarantined reports whether the item is held in quarantine.
func (it *Item) Quarantined() bool { return it.quarantined }

// Recalled reports whether the item is subject to a recall.
func (it *Item) Recalled() bool { return it.recalled }

// Blocked reports whether the item is excluded from the FEFO table.
func (it *Item) Blocked() bool { return it.quarantined || it.recalled }

// SetQuarantine toggles the quarantine flag.
func (it *Item) SetQuarantine(on bool) { it.quarantined = on }

// SetRecall toggles the recall flag.
func (it *Item) SetRecall(on bool) { it.recalled = on }

// Status derives the compliance status from the current flags and expiry.
func (it *Item) Status() Status {
	return Classify(it.quarantined, it.recalled, it.expiryKnown, it.days, it.ExpiryNotApplicable())
}

// Complete reports whether the current quantity reaches the maximum.
func (it *Item) Complete() bool { return it.Quantity >= it.MaxQuantity }

// Excess reports whether the current quantity exceeds the maximum.
func (it *Item) Excess() bool { return it.Quantity > it.MaxQuantity }

// BelowMinimum reports whether the current quantity is under the threshold.
func (it *Item) BelowMinimum() bool { return it.Quantity < it.MinQuantity }

// DisplayString is the one-line description used in free-text lists:
// the name, followed by a quantity note when the item is short or over stock.
//
//	Garze sterili [INCOMPLETO: 2/4]
func (it *Item) DisplayString() string {
	switch {
	case it.Quantity < it.MaxQuantity:
		return fmt.Sprintf("%s [INCOMPLETO: %d/%d]", it.Name, it.Quantity, it.MaxQuantity)
	case it.Quantity > it.MaxQuantity:
		return fmt.Sprintf("%s [ECCESSO: %d/%d]", it.Name, it.Quantity, it.MaxQuantity)
	default:
		return it.Name
	}
}

// Row column indexes, in table order.
const (
	ColCode = iota
	ColName
	ColLot
	ColExpiry
	ColDays
	ColQuantity
	ColMin
	ColMax
	ColStatus
	NumCols
)

// Row projects the item onto the report table columns. Missing text fields
// are shown as "N/D"; the lot column falls back to the serial number. The
// values are untruncated: shortening for display is the renderer's job.
func (it *Item) Row() [NumCols]string {
	var row [NumCols]string
	row[ColCode] = orNA(it.Code)
	row[ColName] = it.Name
	row[ColLot] = orNA(it.Lot)
	if it.Lot == "" {
		row[ColLot] = orNA(it.Serial)
	}
	row[ColExpiry] = orNA(it.Expiry)
	row[ColDays] = NotApplicable
	if it.expiryKnown {
		row[ColDays] = strconv.Itoa(it.days)
	}
	row[ColQuantity] = strconv.Itoa(it.Quantity)
	row[ColMin] = strconv.Itoa(it.MinQuantity)
	row[ColMax] = strconv.Itoa(it.MaxQuantity)
	row[ColStatus] = string(it.Status())
	return row
}

func orNA(s string) string {
	if s == "" {
		return NotApplicable
	}
	return s
}
