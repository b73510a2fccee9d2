package nutrition

import "time"

// DateLayout is the layout of DailyRecord.Date.
const DateLayout = "2006-01-02"

// DailyRecord is the accumulated intake for one calendar date. Date is the
// unique key within a store.
type DailyRecord struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Water    float64 `json:"water"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NewDailyRecord returns a zeroed record for date.
func NewDailyRecord(date string) DailyRecord {
	return DailyRecord{Date: date}
}

// Clock returns the current local time. Tests inject a fixed one.
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FormatDate renders t as a DailyRecord date key in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
