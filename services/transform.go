package services

import (
	"sort"

	ratesSaver "github.com/icmx/rates-saver"
)

// ToLines restricts snapshot to the quote currencies and renders one output
// line per kept code, sorted ascending by code. A null rate renders as an
// empty field after the comma; codes absent from the snapshot produce no
// line at all. Pure: iteration order of the snapshot map never affects the
// result.
func ToLines(snapshot ratesSaver.Snapshot, quotes []string) []ratesSaver.WriteLine {
	codes := make([]string, len(quotes))
	copy(codes, quotes)
	sort.Strings(codes)

	lines := make([]ratesSaver.WriteLine, 0, len(codes))

	for _, code := range codes {
		rate, ok := snapshot.Rates[code]

		if !ok {
			continue
		}

		value := ""

		if rate != nil {
			value = rate.String()
		}

		lines = append(lines, ratesSaver.WriteLine{
			Currency: code,
			Line:     snapshot.Date + "," + value,
		})
	}

	return lines
}
