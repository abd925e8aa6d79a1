// Package inventory models the contents of first-aid kits and the rules used
// to classify them in a compliance report.
//
// # Items
//
// An [Item] is one inventory entry: code, name, lot or serial, current,
// maximum and minimum quantities, an expiry date and two blocking flags
// (quarantine and recall). Days-to-expiry are computed once, against the
// report date passed to [NewItem]. The [Status] is never stored: it is derived
// on every read from the flags and the expiry, so toggling a flag can not leave
// a stale status behind.
//
// Status priority, first match wins:
//
//	QUARANTENA   quarantine flag set
//	RICHIAMO     recall flag set
//	SCADUTO      expiry known and days <= 0
//	IN_SCADENZA  expiry known and 0 < days <= 30
//	N/D          expiry explicitly marked "N/D"
//	OK           everything else
//
// # Sections
//
// A [Section] is one physical kit. It keeps items in input order and derives
// everything else on demand: the completeness percentage, the FEFO
// (first-expired-first-out) view used by the table, and the list of blocked
// items that the report prints separately.
//
//	s := inventory.NewSection("Kit A1", "Magazzino", "")
//	s.Add(inventory.NewItem(inventory.ItemSpec{Name: "Garze", Quantity: 3, MaxQuantity: 4, Expiry: "31/12/2026"}, today))
//	for _, it := range s.FEFO() {
//	    fmt.Println(it.Name, it.Status())
//	}
package inventory
