package inventory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
)

// All disables a filter.
const All = "all"

type SortField string

const (
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
	SortByStock    SortField = "stock"
	SortByPrice    SortField = "price"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

var (
	ErrUnknownSortField = errors.New("inventory: unknown sort field")
	ErrUnknownSortOrder = errors.New("inventory: unknown sort order")
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByName, SortByCategory, SortByStock, SortByPrice:
		return f, nil
	case "":
		return SortByName, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortField, s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case Asc, Desc:
		return o, nil
	case "":
		return Asc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

// Spec parameterizes a single query. It is rebuilt for every request.
type Spec struct {
	Search    string
	Category  string
	Status    string
	Branch    string
	SortField SortField
	SortOrder SortOrder
}

// DefaultSpec matches everything, sorted by name ascending.
func DefaultSpec() Spec {
	return Spec{Category: All, Status: All, Branch: All, SortField: SortByName, SortOrder: Asc}
}

// Query filters items by every predicate in spec and sorts the result stably.
// The input slice is not modified. An empty SortField sorts by name; any other
// unknown value panics.
func Query(items []catalog.Item, spec Spec) []catalog.Item {
	cmp := comparator(spec.SortField)

	search := strings.ToLower(spec.Search)
	category := activeCategory(spec.Category)
	status := activeStatus(spec.Status)
	branch := activeBranch(spec.Branch, items)

	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if search != "" && !matchesText(it, search) {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		if status != "" && it.Status() != status {
			continue
		}
		if branch != "" && it.Branch != branch {
			continue
		}
		out = append(out, it)
	}

	if spec.SortOrder == Desc {
		asc := cmp
		cmp = func(a, b catalog.Item) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func matchesText(it catalog.Item, lowered string) bool {
	return strings.Contains(strings.ToLower(it.Name), lowered) ||
		strings.Contains(strings.ToLower(it.SKU), lowered) ||
		strings.Contains(strings.ToLower(it.Category), lowered)
}

// activeCategory returns "" when the category filter should not apply.
func activeCategory(v string) string {
	if v == "" || v == All || !catalog.KnownCategory(v) {
		return ""
	}
	return v
}

func activeStatus(v string) catalog.Status {
	s := catalog.Status(v)
	if v == "" || v == All || !s.Valid() {
		return ""
	}
	return s
}

func activeBranch(v string, items []catalog.Item) string {
	if v == "" || v == All {
		return ""
	}
	if catalog.BranchByName(v) != nil {
		return v
	}
	for _, it := range items {
		if it.Branch == v {
			return v
		}
	}
	return ""
}

func comparator(field SortField) func(a, b catalog.Item) int {
	switch field {
	case SortByName, "":
		c := collate.New(language.English)
		return func(a, b catalog.Item) int { return c.CompareString(a.Name, b.Name) }
	case SortByCategory:
		c := collate.New(language.English)
		return func(a, b catalog.Item) int { return c.CompareString(a.Category, b.Category) }
	case SortByStock:
		return func(a, b catalog.Item) int { return a.Stock - b.Stock }
	case SortByPrice:
		return func(a, b catalog.Item) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			}
			return 0
		}
	}
	panic(fmt.Sprintf("inventory: unknown sort field %q", field))
}
