package inventory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Section is one physical kit and its items, in input order.
type Section struct {
	Title       string
	Location    string
	Responsible string

	items []*Item
}

// NewSection creates a kit section with the given items.
func NewSection(title, location, responsible string, items ...*Item) *Section {
	s := &Section{Title: title, Location: location, Responsible: responsible}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add appends an item. Nil items are ignored.
func (s *Section) Add(it *Item) {
	if it != nil {
		s.items = append(s.items, it)
	}
}

// Items returns the items in input order. The slice is a copy; the items are
// shared with the section.
func (s *Section) Items() []*Item {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Section) Len() int { return len(s.items) }

// Completeness returns the percentage of items at or above their maximum
// quantity, or 0 for an empty kit.
func (s *Section) Completeness() float64 {
	if len(s.items) == 0 {
		return 0
	}
	complete := 0
	for _, it := range s.items {
		if it.Complete() {
			complete++
		}
	}
	return float64(complete) / float64(len(s.items)) * 100
}

// FEFO returns the non-blocked items in first-expired-first-out order:
// items with a known expiry first, soonest expiry first, then items without
// a known expiry by name. The sort is stable, so equal keys keep input order.
func (s *Section) FEFO() []*Item {
	view := make([]*Item, 0, len(s.items))
	for _, it := range s.items {
		if !it.Blocked() {
			view = append(view, it)
		}
	}
	slices.SortStableFunc(view, compareFEFO)
	return view
}

func compareFEFO(a, b *Item) int {
	switch {
	case a.expiryKnown && !b.expiryKnown:
		return -1
	case !a.expiryKnown && b.expiryKnown:
		return 1
	case a.expiryKnown:
		return cmp.Compare(a.days, b.days)
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

// Blocked returns the quarantined or recalled items in input order.
func (s *Section) Blocked() []*Item {
	var blocked []*Item
	for _, it := range s.items {
		if it.Blocked() {
			blocked = append(blocked, it)
		}
	}
	return blocked
}

// Caption is the header line of the kit table.
//
//	Kit: Kit A1 | Ubicazione: Magazzino | Completezza: 66.7%
func (s *Section) Caption() string {
	var b strings.Builder
	b.WriteString("Kit: ")
	b.WriteString(s.Title)
	if s.Location != "" {
		b.WriteString(" | Ubicazione: ")
		b.WriteString(s.Location)
	}
	if s.Responsible != "" {
		b.WriteString(" | Responsabile: ")
		b.WriteString(s.Responsible)
	}
	fmt.Fprintf(&b, " | Completezza: %.1f%%", s.Completeness())
	return b.String()
}
