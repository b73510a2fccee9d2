// Package tracker applies logged amounts to the in-memory collection of
// daily records. It never touches storage; callers load and save around it.
package tracker

import (
	"github.com/dmitrijs2005/cali/internal/nutrition"
)

// Tracker resolves "today" through its clock.
type Tracker struct {
	clock nutrition.Clock
}

func New(clock nutrition.Clock) *Tracker {
	if clock == nil {
		clock = nutrition.SystemClock
	}
	return &Tracker{clock: clock}
}

// Today returns the local date key for the tracker's clock.
func (t *Tracker) Today() string {
	return nutrition.FormatDate(t.clock())
}

// FindOrCreate returns the first record for date, appending a zeroed one
// when none exists. The pointer is valid until records is appended to again.
func FindOrCreate(records *[]nutrition.DailyRecord, date string) *nutrition.DailyRecord {
	if i := Find(*records, date); i >= 0 {
		return &(*records)[i]
	}
	*records = append(*records, nutrition.NewDailyRecord(date))
	return &(*records)[len(*records)-1]
}

// Find returns the index of the first record for date, or -1.
func Find(records []nutrition.DailyRecord, date string) int {
	for i := range records {
		if records[i].Date == date {
			return i
		}
	}
	return -1
}

// Log adds amount to today's record for category and returns the new total.
// The amount is not checked: zero or negative values are added as given.
func (t *Tracker) Log(records *[]nutrition.DailyRecord, category nutrition.Category, amount float64) float64 {
	rec := FindOrCreate(records, t.Today())
	return Apply(rec, category, amount)
}

// Apply adds amount to rec's accumulator for category.
func Apply(rec *nutrition.DailyRecord, category nutrition.Category, amount float64) float64 {
	return rec.Add(category, amount)
}

// ResetToday zeroes today's record. It reports whether there was one; no
// record is created when there was not.
func (t *Tracker) ResetToday(records []nutrition.DailyRecord) bool {
	return ResetDay(records, t.Today())
}

// ResetDay replaces the first record for date with a zeroed one.
func ResetDay(records []nutrition.DailyRecord, date string) bool {
	i := Find(records, date)
	if i < 0 {
		return false
	}
	records[i] = nutrition.NewDailyRecord(date)
	return true
}
