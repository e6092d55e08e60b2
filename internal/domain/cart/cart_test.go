package cart

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
)

const eps = 1e-9

func item(id string, stock int, price float64) catalog.Item {
	return catalog.Item{ID: id, Name: "Item " + id, SKU: "SKU-" + id, Category: catalog.CategorySchool, Price: price, Stock: stock}
}

func TestAddClampsAtStock(t *testing.T) {
	c := New()
	x := item("X1", 3, 100)
	want := []Outcome{Added, Incremented, Incremented, Clamped}
	for i, w := range want {
		if got := c.Add(x); got != w {
			t.Fatalf("add #%d: expected %s, got %s", i+1, w, got)
		}
	}
	if q := c.Quantity("X1"); q != 3 {
		t.Fatalf("expected quantity 3, got %d", q)
	}
	if math.Abs(c.Subtotal()-300) > eps || math.Abs(c.Tax()-54) > eps || math.Abs(c.Total()-354) > eps {
		t.Fatalf("unexpected totals %+v", c.Totals())
	}
}

func TestAddZeroStockRejected(t *testing.T) {
	c := New()
	if got := c.Add(item("Z", 0, 500)); got != Rejected {
		t.Fatalf("expected rejected, got %s", got)
	}
	if !c.Empty() {
		t.Fatalf("zero-stock add must not insert a line")
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	c := New()
	c.Add(item("B", 5, 10))
	c.Add(item("A", 5, 10))
	c.Add(item("B", 5, 10))
	c.Add(item("C", 5, 10))

	var got []string
	for _, l := range c.Lines() {
		got = append(got, l.Item.ID)
	}
	if !reflect.DeepEqual(got, []string{"B", "A", "C"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if c.Len() != 3 || c.Units() != 4 {
		t.Fatalf("expected 3 lines / 4 units, got %d / %d", c.Len(), c.Units())
	}
}

func TestLinesIsACopy(t *testing.T) {
	c := New()
	c.Add(item("A", 5, 10))
	lines := c.Lines()
	lines[0].Quantity = 99
	if c.Quantity("A") != 1 {
		t.Fatalf("caller mutated cart through Lines()")
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(item("A", 5, 10))
	c.Add(item("B", 5, 20))
	if !c.Remove("A") {
		t.Fatalf("expected A removed")
	}
	if c.Remove("A") {
		t.Fatalf("second remove must be a no-op")
	}
	if c.Len() != 1 || c.Lines()[0].Item.ID != "B" {
		t.Fatalf("unexpected lines %+v", c.Lines())
	}
}

func TestUpdateQuantity(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		qty     int
		want    Outcome
		wantQty int
	}{
		{"set", "A", 4, Updated, 4},
		{"clamp", "A", 50, Clamped, 5},
		{"zero removes", "A", 0, Removed, 0},
		{"negative removes", "A", -3, Removed, 0},
		{"missing line", "Q", 2, Noop, 0},
		{"missing line zero", "Q", 0, Noop, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.Add(item("A", 5, 10))
			if got := c.UpdateQuantity(tc.id, tc.qty); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
			if got := c.Quantity(tc.id); got != tc.wantQty {
				t.Fatalf("expected quantity %d, got %d", tc.wantQty, got)
			}
		})
	}
}

func TestUpdateZeroEquivalentToRemove(t *testing.T) {
	build := func() *Cart {
		c := New()
		c.Add(item("A", 5, 10))
		c.Add(item("B", 2, 15))
		c.Add(item("B", 2, 15))
		return c
	}
	for _, id := range []string{"A", "B", "missing"} {
		viaUpdate, viaRemove := build(), build()
		viaUpdate.UpdateQuantity(id, 0)
		viaRemove.Remove(id)
		if !reflect.DeepEqual(viaUpdate.Lines(), viaRemove.Lines()) {
			t.Fatalf("id %s: update(0) and remove diverged", id)
		}
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(item("A", 5, 10))
	c.Clear()
	if !c.Empty() || c.Subtotal() != 0 || c.Total() != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", c.Totals())
	}
}

// Random add/update sequences must never exceed stock and totals must always
// match a fresh recomputation.
func TestInvariantsUnderRandomOps(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	items := []catalog.Item{item("A", 0, 120), item("B", 1, 75.5), item("C", 7, 999), item("D", 30, 10)}
	c := New()

	for step := 0; step < 2000; step++ {
		it := items[rnd.Intn(len(items))]
		switch rnd.Intn(4) {
		case 0, 1:
			c.Add(it)
		case 2:
			c.UpdateQuantity(it.ID, rnd.Intn(40)-5)
		case 3:
			c.Remove(it.ID)
		}

		var sum float64
		for _, l := range c.Lines() {
			if l.Quantity <= 0 || l.Quantity > l.Item.Stock {
				t.Fatalf("step %d: bad quantity %d for stock %d", step, l.Quantity, l.Item.Stock)
			}
			sum += l.Item.Price * float64(l.Quantity)
		}
		if math.Abs(c.Subtotal()-sum) > 1e-6 {
			t.Fatalf("step %d: subtotal %f != %f", step, c.Subtotal(), sum)
		}
		if math.Abs(c.Total()-sum*1.18) > 1e-6 {
			t.Fatalf("step %d: total %f != %f", step, c.Total(), sum*1.18)
		}
	}
}
