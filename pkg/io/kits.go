package io

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/kitreport/pkg/inventory"
)

const (
	kitSeparator    = "|"
	recordSeparator = ";"
	fieldSeparator  = ","

	// recordFields is the minimum number of fields of a valid record.
	recordFields = 7

	// Synthesized stock levels for records read from this format.
	syntheticMaxOffset = 2
	syntheticMinimum   = 1
)

// Record is one parsed item line.
type Record struct {
	KitCode     string
	Location    string
	ItemCode    string
	Description string
	Quantity    int
	Expiry      string
	Status      string
}

// Kit groups the valid records of one "|"-separated block, in input order.
type Kit struct {
	Code     string
	Location string
	Records  []Record
}

// ParseResult is the outcome of [ReadKits].
type ParseResult struct {
	Kits    []Kit
	Skipped int // malformed records that were dropped
}

// Records returns the total number of valid records across all kits.
func (r ParseResult) Records() int {
	n := 0
	for _, k := range r.Kits {
		n += len(k.Records)
	}
	return n
}

// ParseRecord parses one comma-separated item record. It returns false when
// the record has fewer than seven fields; no partial record is produced.
// Fields beyond the seventh are ignored.
func ParseRecord(s string) (Record, bool) {
	parts := strings.Split(s, fieldSeparator)
	if len(parts) < recordFields {
		return Record{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	qty, err := strconv.Atoi(parts[4])
	if err != nil {
		qty = 0
	}
	return Record{
		KitCode:     parts[0],
		Location:    parts[1],
		ItemCode:    parts[2],
		Description: parts[3],
		Quantity:    qty,
		Expiry:      parts[5],
		Status:      parts[6],
	}, true
}

// ReadKits splits the kits text into kits of valid records. Blank kits and
// blank records are ignored silently; malformed records are counted in
// Skipped. A kit whose records are all malformed is omitted.
func ReadKits(data string) ParseResult {
	var res ParseResult
	if strings.TrimSpace(data) == "" {
		return res
	}

	for _, block := range strings.Split(data, kitSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		var kit Kit
		for _, line := range strings.Split(block, recordSeparator) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			rec, ok := ParseRecord(line)
			if !ok {
				res.Skipped++
				continue
			}
			if len(kit.Records) == 0 {
				kit.Code = rec.KitCode
				kit.Location = rec.Location
			}
			kit.Records = append(kit.Records, rec)
		}
		if len(kit.Records) > 0 {
			res.Kits = append(res.Kits, kit)
		}
	}
	return res
}

// BuildSections converts parsed kits into inventory sections, computing
// expiry against asOf. Each kit is titled "Kit <code>" and located where its
// first record says.
func BuildSections(kits []Kit, asOf time.Time) []*inventory.Section {
	sections := make([]*inventory.Section, 0, len(kits))
	for _, k := range kits {
		s := inventory.NewSection("Kit "+k.Code, k.Location, "")
		for _, rec := range k.Records {
			s.Add(buildItem(rec, asOf))
		}
		sections = append(sections, s)
	}
	return sections
}

func buildItem(rec Record, asOf time.Time) *inventory.Item {
	status := inventory.Status(strings.ToUpper(rec.Status))
	return inventory.NewItem(inventory.ItemSpec{
		Code:        rec.ItemCode,
		Name:        rec.Description,
		Quantity:    rec.Quantity,
		MaxQuantity: rec.Quantity + syntheticMaxOffset,
		MinQuantity: syntheticMinimum,
		Expiry:      rec.Expiry,
		Quarantined: status == inventory.StatusQuarantine,
		Recalled:    status == inventory.StatusRecall,
	}, asOf)
}

// ParseKits is [ReadKits] followed by [BuildSections].
func ParseKits(data string, asOf time.Time) ([]*inventory.Section, ParseResult) {
	res := ReadKits(data)
	return BuildSections(res.Kits, asOf), res
}
