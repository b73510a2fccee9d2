// Package report renders daily records and command results as console text.
//
// All output is plain text unless the Reporter was built with colour; the
// layout is identical either way.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cali/internal/nutrition"
	"github.com/dmitrijs2005/cali/internal/tracker"
	"github.com/gookit/color"
)

const (
	summaryRule = "-------------------------"
	historyRule = "==================="
)

var categoryColors = map[nutrition.Category]color.Color{
	nutrition.Calories: color.FgGreen,
	nutrition.Water:    color.FgBlue,
	nutrition.Protein:  color.FgYellow,
	nutrition.Carbs:    color.FgMagenta,
	nutrition.Fat:      color.FgRed,
}

// Reporter formats records. Colour is applied only when colored is set.
type Reporter struct {
	colored bool
}

func New(colored bool) *Reporter {
	return &Reporter{colored: colored}
}

func (r *Reporter) paint(s string, style ...color.Color) string {
	if !r.colored {
		return s
	}
	return color.New(style...).Sprint(s)
}

func (r *Reporter) bold(s string) string {
	return r.paint(s, color.OpBold)
}

// FormatAmount renders a value in its shortest decimal form: 500, 500.5.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (r *Reporter) total(c nutrition.Category, v float64) string {
	if c == nutrition.Calories {
		return FormatAmount(v)
	}
	return fmt.Sprintf("%.1f%s", v, c.Unit())
}

// block is the five-line body shared by summary and history.
func (r *Reporter) block(rec nutrition.DailyRecord) string {
	var b strings.Builder
	for _, c := range nutrition.Categories {
		fg := categoryColors[c]
		fmt.Fprintf(&b, "%s: %s\n", r.paint(c.Label(), fg), r.paint(r.total(c, rec.Value(c)), fg, color.OpBold))
	}
	return b.String()
}

// Summary renders the record for date, or a "no data" line when there is
// none. Lookup is an exact string match on the date.
func (r *Reporter) Summary(records []nutrition.DailyRecord, date string) string {
	i := tracker.Find(records, date)
	if i < 0 {
		return fmt.Sprintf("No data found for %s\n", date)
	}

	rec := records[i]
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.bold("Nutrition Summary for"), r.bold(rec.Date))
	b.WriteString(r.bold(summaryRule) + "\n")
	b.WriteString(r.block(rec))
	return b.String()
}

// History renders every record, newest date first. records is not reordered.
func (r *Reporter) History(records []nutrition.DailyRecord) string {
	if len(records) == 0 {
		return r.bold("No nutrition data found.") + "\n"
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b nutrition.DailyRecord) int {
		return strings.Compare(b.Date, a.Date)
	})

	var b strings.Builder
	b.WriteString(r.bold("All Nutrition Records") + "\n")
	b.WriteString(r.bold(historyRule) + "\n")
	for _, rec := range sorted {
		fmt.Fprintf(&b, "\n%s %s\n", r.bold("Date:"), r.bold(rec.Date))
		b.WriteString(r.bold(summaryRule) + "\n")
		b.WriteString(r.block(rec))
	}
	return b.String()
}

// Logged confirms a log command: "Logged 500 calories. Total today: 800".
func (r *Reporter) Logged(c nutrition.Category, amount, total float64) string {
	fg := categoryColors[c]
	return fmt.Sprintf("%s %s %s. %s %s\n",
		r.paint("Logged", fg),
		r.paint(FormatAmount(amount), fg, color.OpBold),
		r.paint(c.Noun(), fg),
		r.paint("Total today:", fg),
		r.paint(FormatAmount(total), fg, color.OpBold),
	)
}

// Reset reports the outcome of resetting today's record.
func (r *Reporter) Reset(found bool) string {
	if found {
		return r.bold("Today's nutrition data has been reset.") + "\n"
	}
	return r.bold("No data for today to reset.") + "\n"
}
