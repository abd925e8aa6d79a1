// Package io reads kit inventories from the delimiter-based text format used
// by the batch entry point.
//
// # Format
//
// Kits are separated by "|", items within a kit by ";", and each item is seven
// comma-separated fields:
//
//	kitCode,location,itemCode,description,quantity,expiryDate,status
//
// For example, two kits with two and one items:
//
//	A1,Magazzino,PS-01,Guanti,4,31/12/2026,OK;A1,Magazzino,PS-02,Garze,2,N/D,OK|B2,Ufficio,PS-09,Cerotti,10,01/11/2026,OK
//
// The format is lenient. Records with fewer than seven fields are
// skipped, a quantity that is not an integer reads as 0, and kits without a
// single valid record are dropped. [ReadKits] reports how many records were
// skipped so callers can log it.
//
// The quirks of this format stay in this package: [BuildSections] is the only
// place that invents a maximum quantity (quantity + 2) and a minimum threshold
// (1) for items, and that turns a QUARANTENA or RICHIAMO status field into the
// matching item flag. The inventory model itself never sees the raw status.
package io
