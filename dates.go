package ratessaver

import "time"

const DateLayout = "2006-01-02"

// YesterdayUTC returns the previous UTC calendar day of now, formatted the
// way the pricing service addresses historical snapshots.
func YesterdayUTC(now time.Time) string {
	return now.UTC().AddDate(0, 0, -1).Format(DateLayout)
}
