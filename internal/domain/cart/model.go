package cart

import "github.com/Spok95/uniformhub/internal/domain/catalog"

// TaxRate is the flat GST applied to every subtotal.
const TaxRate = 0.18

// Line is a catalog snapshot plus the quantity being sold.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

func (l Line) Amount() float64 { return l.Item.Price * float64(l.Quantity) }

// Outcome reports what a mutation did. Clamps and no-ops are outcomes, not errors.
type Outcome string

const (
	Added       Outcome = "added"
	Incremented Outcome = "incremented"
	Clamped     Outcome = "clamped"
	Updated     Outcome = "updated"
	Removed     Outcome = "removed"
	Rejected    Outcome = "rejected"
	Noop        Outcome = "noop"
)
