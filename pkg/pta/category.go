package pta

import (
	"strconv"
	"strings"

	"github.com/jfmartin/ptadiff/pkg/errors"
)

// Category selects which category-specific column rules apply when
// loading and comparing PTA files.
type Category string

const (
	// CategoryVP is the passenger vehicle category (Véhicules Particuliers).
	CategoryVP Category = "VP"
	// CategoryVU is the utility vehicle category (Véhicules Utilitaires).
	CategoryVU Category = "VU"
)

// DefaultCategory is used when no category is configured.
const DefaultCategory = CategoryVP

// ParseCategory parses a category from user input. It accepts any casing
// and returns a ValidationError for unknown values.
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CategoryVP):
		return CategoryVP, nil
	case string(CategoryVU):
		return CategoryVU, nil
	case "":
		return DefaultCategory, nil
	default:
		return "", &errors.ValidationError{
			Column:  "category",
			Message: "unknown PTA category " + strconv.Quote(s) + " (expected VP or VU)",
		}
	}
}

// String returns the category code.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether the category is a known code.
func (c Category) Valid() bool {
	return c == CategoryVP || c == CategoryVU
}
