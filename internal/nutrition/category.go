package nutrition

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category selects which accumulator of a DailyRecord a logged amount goes to.
type Category int

const (
	Calories Category = iota
	Water
	Protein
	Carbs
	Fat
)

// Categories lists every category in display order.
var Categories = []Category{Calories, Water, Protein, Carbs, Fat}

// String returns the CLI name of the category.
func (c Category) String() string {
	switch c {
	case Calories:
		return "calories"
	case Water:
		return "water"
	case Protein:
		return "protein"
	case Carbs:
		return "carbs"
	case Fat:
		return "fat"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Label is the capitalised name used in reports.
func (c Category) Label() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Unit is the suffix printed after a formatted total.
func (c Category) Unit() string {
	switch c {
	case Water:
		return " fl oz"
	case Protein, Carbs, Fat:
		return "g"
	default:
		return ""
	}
}

// Noun describes a logged amount, e.g. "grams of protein".
func (c Category) Noun() string {
	switch c {
	case Calories:
		return "calories"
	case Water:
		return "fl oz of water"
	default:
		return "grams of " + c.String()
	}
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Value returns the accumulator c points at.
func (r *DailyRecord) Value(c Category) float64 {
	switch c {
	case Calories:
		return r.Calories
	case Water:
		return r.Water
	case Protein:
		return r.Protein
	case Carbs:
		return r.Carbs
	case Fat:
		return r.Fat
	default:
		return 0
	}
}

// Add adds amount to the accumulator c points at and returns the new total.
// Unknown categories are ignored.
func (r *DailyRecord) Add(c Category, amount float64) float64 {
	switch c {
	case Calories:
		r.Calories += amount
	case Water:
		r.Water += amount
	case Protein:
		r.Protein += amount
	case Carbs:
		r.Carbs += amount
	case Fat:
		r.Fat += amount
	}
	return r.Value(c)
}
