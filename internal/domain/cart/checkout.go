package cart

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyCart            = errors.New("cart: empty cart")
	ErrUnknownPaymentMethod = errors.New("cart: unknown payment method")
)

type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
	PayUPI  PaymentMethod = "upi"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PayCash, PayCard, PayUPI:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

// Receipt is the immutable record handed to the customer after payment.
type Receipt struct {
	Number   string        `json:"number"`
	Branch   string        `json:"branch"`
	IssuedAt time.Time     `json:"issued_at"`
	Lines    []Line        `json:"lines"`
	Subtotal float64       `json:"subtotal"`
	Tax      float64       `json:"tax"`
	Total    float64       `json:"total"`
	Method   PaymentMethod `json:"method"`
}

// Units is the total number of pieces sold.
func (r Receipt) Units() int {
	n := 0
	for _, l := range r.Lines {
		n += l.Quantity
	}
	return n
}

// Checkout completes the sale: it snapshots lines and totals into a receipt and
// clears the cart. On error the cart is left untouched.
func Checkout(c *Cart, method PaymentMethod, branch string, now time.Time) (Receipt, error) {
	if c.Empty() {
		return Receipt{}, ErrEmptyCart
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Receipt{}, err
	}

	t := c.Totals()
	r := Receipt{
		Number:   "RCP-" + now.UTC().Format("20060102-150405.000"),
		Branch:   branch,
		IssuedAt: now,
		Lines:    c.Lines(),
		Subtotal: t.Subtotal,
		Tax:      t.Tax,
		Total:    t.Total,
		Method:   method,
	}
	c.Clear()
	return r, nil
}
