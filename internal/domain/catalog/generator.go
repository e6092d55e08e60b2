package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator produces a catalog; tests inject fixed fixtures instead of random data.
type Generator interface {
	Items() []Item
}

// Fixed is a Generator over a prepared slice.
type Fixed []Item

func (f Fixed) Items() []Item {
	out := make([]Item, len(f))
	copy(out, f)
	return out
}

const (
	perCategory = 34
	maxItems    = 200
)

var itemPrefixes = map[string][]string{
	CategorySchool:      {"Classic", "Premium", "Standard", "Elite", "Basic"},
	CategoryCorporate:   {"Executive", "Professional", "Business", "Formal", "Modern"},
	CategorySports:      {"Athletic", "Performance", "Active", "Dynamic", "Pro"},
	CategoryMedical:     {"Medical", "Clinical", "Healthcare", "Hospital", "Comfort"},
	CategoryHospitality: {"Hotel", "Restaurant", "Service", "Hospitality", "Classic"},
	CategoryIndustrial:  {"Heavy-Duty", "Safety", "Work", "Industrial", "Durable"},
}

var itemTypes = map[string][]string{
	CategorySchool:      {"Shirt", "Trousers", "Skirt", "Blazer", "Sweater", "Tie", "Socks"},
	CategoryCorporate:   {"Shirt", "Trousers", "Blazer", "Vest", "Tie", "Dress"},
	CategorySports:      {"Jersey", "Shorts", "Track Pants", "T-Shirt", "Jacket"},
	CategoryMedical:     {"Top", "Pants", "Lab Coat", "Jacket", "Cap"},
	CategoryHospitality: {"Shirt", "Trousers", "Apron", "Vest", "Chef Coat"},
	CategoryIndustrial:  {"Coverall", "Jacket", "Trousers", "Vest", "Gloves"},
}

// SeededGenerator builds the demo catalog from a deterministic source.
type SeededGenerator struct {
	seed int64
}

func NewSeededGenerator(seed int64) *SeededGenerator {
	return &SeededGenerator{seed: seed}
}

// Items returns the same catalog for the same seed on every call.
func (g *SeededGenerator) Items() []Item {
	rnd := rand.New(rand.NewSource(g.seed))
	items := make([]Item, 0, maxItems)
	id := 1

	for _, category := range Categories {
		prefixes := itemPrefixes[category]
		types := itemTypes[category]
		for i := 0; i < perCategory && len(items) < maxItems; i++ {
			prefix := prefixes[rnd.Intn(len(prefixes))]
			typ := types[rnd.Intn(len(types))]
			size := Sizes[rnd.Intn(len(Sizes))]
			branch := Branches[rnd.Intn(len(Branches))]
			stock := rnd.Intn(100)
			price := float64(rnd.Intn(2500) + 200)

			items = append(items, Item{
				ID:       fmt.Sprintf("ITM%04d", id),
				Name:     prefix + " " + typ,
				SKU:      fmt.Sprintf("SKU-%s-%04d", strings.ToUpper(category[:3]), id),
				Category: category,
				Size:     size,
				Price:    price,
				Stock:    stock,
				Branch:   branch.Name,
			})
			id++
		}
	}
	return items
}
