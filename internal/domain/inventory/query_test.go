package inventory

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
)

func sample() []catalog.Item {
	return []catalog.Item{
		{ID: "1", Name: "Premium Blazer", SKU: "SKU-SCH-0001", Category: catalog.CategorySchool, Price: 1200, Stock: 40, Branch: "Aundh"},
		{ID: "2", Name: "Athletic Jersey", SKU: "SKU-SPO-0002", Category: catalog.CategorySports, Price: 600, Stock: 4, Branch: "Salt Lake"},
		{ID: "3", Name: "Lab Coat", SKU: "SKU-MED-0003", Category: catalog.CategoryMedical, Price: 900, Stock: 0, Branch: "Aundh"},
		{ID: "4", Name: "Chef Coat", SKU: "SKU-HOS-0004", Category: catalog.CategoryHospitality, Price: 900, Stock: 7, Branch: "Anna Nagar"},
		{ID: "5", Name: "Work Gloves", SKU: "SKU-IND-0005", Category: catalog.CategoryIndustrial, Price: 250, Stock: 1, Branch: "Aundh"},
		{ID: "6", Name: "Basic Tie", SKU: "SKU-SCH-0006", Category: catalog.CategorySchool, Price: 200, Stock: 4, Branch: "Salt Lake"},
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestQueryLowStockAscending(t *testing.T) {
	spec := Spec{Search: "", Category: All, Status: "low-stock", Branch: All, SortField: SortByStock, SortOrder: Asc}
	got := Query(sample(), spec)
	want := []string{"5", "2", "6", "4"} // 2 and 6 tie at 4 and keep catalog order
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	for _, it := range got {
		if it.Stock <= 0 || it.Stock >= 10 {
			t.Fatalf("non low-stock item leaked: %+v", it)
		}
	}
}

func TestQueryFilters(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		want []string
	}{
		{"everything by name", DefaultSpec(), []string{"2", "6", "4", "3", "1", "5"}},
		{"search is case insensitive over name", Spec{Search: "COAT", SortField: SortByName}, []string{"4", "3"}},
		{"search matches sku", Spec{Search: "sku-ind", SortField: SortByName}, []string{"5"}},
		{"search matches category", Spec{Search: "medical", SortField: SortByName}, []string{"3"}},
		{"category", Spec{Category: catalog.CategorySchool, SortField: SortByName}, []string{"6", "1"}},
		{"status", Spec{Status: string(catalog.StatusOutOfStock), SortField: SortByName}, []string{"3"}},
		{"branch", Spec{Branch: "Aundh", SortField: SortByName}, []string{"3", "1", "5"}},
		{"combined", Spec{Category: catalog.CategorySchool, Branch: "Salt Lake", Status: "low-stock", SortField: SortByName}, []string{"6"}},
		{"price desc keeps tie order", Spec{SortField: SortByPrice, SortOrder: Desc}, []string{"1", "3", "4", "2", "5", "6"}},
		{"category asc", Spec{SortField: SortByCategory}, []string{"4", "5", "3", "1", "6", "2"}},
		{"no matches", Spec{Search: "tuxedo", SortField: SortByName}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Query(sample(), tc.spec))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestQueryUnknownFiltersDegrade(t *testing.T) {
	all := ids(Query(sample(), DefaultSpec()))
	for _, spec := range []Spec{
		{Category: "Pet Costumes", SortField: SortByName},
		{Status: "discontinued", SortField: SortByName},
		{Branch: "Atlantis", SortField: SortByName},
	} {
		if got := ids(Query(sample(), spec)); !reflect.DeepEqual(got, all) {
			t.Fatalf("spec %+v: expected no filtering, got %v", spec, got)
		}
	}
}

func TestQueryKnownBranchWithoutItems(t *testing.T) {
	got := Query(sample(), Spec{Branch: "Connaught Place", SortField: SortByName})
	if len(got) != 0 {
		t.Fatalf("reference branch must filter even when empty, got %v", ids(got))
	}
}

func TestQueryIdempotentAndPure(t *testing.T) {
	items := sample()
	before := append([]catalog.Item(nil), items...)
	spec := Spec{Search: "a", SortField: SortByStock, SortOrder: Desc}

	first := Query(items, spec)
	second := Query(items, spec)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("query is not idempotent")
	}
	if !reflect.DeepEqual(items, before) {
		t.Fatalf("query modified its input")
	}
}

func TestQueryMonotonic(t *testing.T) {
	items := catalog.NewSeededGenerator(3).Items()
	base := Spec{Category: catalog.CategorySports, SortField: SortByName}
	wide := Query(items, base)

	narrow := base
	narrow.Search = "jersey"
	narrower := Query(items, narrow)
	if len(narrower) > len(wide) {
		t.Fatalf("adding a search term grew the result: %d > %d", len(narrower), len(wide))
	}
	inWide := map[string]bool{}
	for _, it := range wide {
		inWide[it.ID] = true
	}
	for _, it := range narrower {
		if !inWide[it.ID] {
			t.Fatalf("narrow result %s is not in the wider result", it.ID)
		}
	}
}

func TestQueryPanicsOnUnknownSortField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Query(sample(), Spec{SortField: "colour"})
}

func TestParseSort(t *testing.T) {
	if f, err := ParseSortField("Price"); err != nil || f != SortByPrice {
		t.Fatalf("unexpected %v %v", f, err)
	}
	if f, err := ParseSortField(""); err != nil || f != SortByName {
		t.Fatalf("empty field should default to name, got %v %v", f, err)
	}
	if _, err := ParseSortField("colour"); !errors.Is(err, ErrUnknownSortField) {
		t.Fatalf("expected ErrUnknownSortField, got %v", err)
	}
	if o, err := ParseSortOrder("DESC"); err != nil || o != Desc {
		t.Fatalf("unexpected %v %v", o, err)
	}
	if _, err := ParseSortOrder("sideways"); !errors.Is(err, ErrUnknownSortOrder) {
		t.Fatalf("expected ErrUnknownSortOrder, got %v", err)
	}
}
