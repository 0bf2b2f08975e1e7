package domain

import (
	"fmt"
	"strings"
)

// Category groups commensurable units.
type Category string

// Supported conversion categories.
const (
	CategoryLength      Category = "length"
	CategoryTemperature Category = "temperature"
	CategoryWeight      Category = "weight"
)

// AllCategories lists the supported categories in display order.
func AllCategories() []Category {
	return []Category{CategoryLength, CategoryTemperature, CategoryWeight}
}

// IsValid reports whether c is one of the supported categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryLength, CategoryTemperature, CategoryWeight:
		return true
	default:
		return false
	}
}

// Title returns the human readable category name.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory converts user input into a Category.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
