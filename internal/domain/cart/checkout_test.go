package cart

import (
	"errors"
	"testing"
	"time"
)

func TestCheckout(t *testing.T) {
	c := New()
	c.Add(item("A", 5, 100))
	c.Add(item("A", 5, 100))
	c.Add(item("B", 1, 50))
	before := c.Totals()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	r, err := Checkout(c, PayUPI, "Aundh", now)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if r.Subtotal != before.Subtotal || r.Tax != before.Tax || r.Total != before.Total {
		t.Fatalf("receipt totals %+v differ from cart %+v", r, before)
	}
	if r.Units() != 3 || len(r.Lines) != 2 {
		t.Fatalf("unexpected receipt lines %+v", r.Lines)
	}
	if r.Number != "RCP-20260314-093000.000" || r.Method != PayUPI || r.Branch != "Aundh" {
		t.Fatalf("unexpected receipt header %+v", r)
	}
	if !c.Empty() {
		t.Fatalf("checkout must clear the cart")
	}
}

func TestCheckoutErrors(t *testing.T) {
	if _, err := Checkout(New(), PayCash, "", time.Now()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	c := New()
	c.Add(item("A", 5, 100))
	if _, err := Checkout(c, "cheque", "", time.Now()); !errors.Is(err, ErrUnknownPaymentMethod) {
		t.Fatalf("expected ErrUnknownPaymentMethod, got %v", err)
	}
	if c.Empty() {
		t.Fatalf("failed checkout must leave the cart intact")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, err := ParsePaymentMethod(" Card "); err != nil || m != PayCard {
		t.Fatalf("unexpected %v %v", m, err)
	}
}
