package catalog

import (
	"encoding/json"
	"slices"
)

type Status string

const (
	StatusInStock    Status = "in-stock"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
)

// LowStockThreshold is the first stock level that counts as in-stock.
const LowStockThreshold = 10

// Statuses lists the derived statuses in display order.
var Statuses = []Status{StatusInStock, StatusLowStock, StatusOutOfStock}

func (s Status) Valid() bool { return slices.Contains(Statuses, s) }

const (
	CategorySchool      = "School Uniforms"
	CategoryCorporate   = "Corporate Wear"
	CategorySports      = "Sports Uniforms"
	CategoryMedical     = "Medical Scrubs"
	CategoryHospitality = "Hospitality"
	CategoryIndustrial  = "Industrial"
)

// Categories is the fixed category set, in catalog order.
var Categories = []string{
	CategorySchool,
	CategoryCorporate,
	CategorySports,
	CategoryMedical,
	CategoryHospitality,
	CategoryIndustrial,
}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "28", "30", "32", "34", "36", "38", "40"}

func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Category string  `json:"category"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Branch   string  `json:"branch"`
}

// Status is derived from Stock on every call and never stored.
func (it Item) Status() Status {
	switch {
	case it.Stock <= 0:
		return StatusOutOfStock
	case it.Stock < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// MarshalJSON adds the derived status; UnmarshalJSON of the plain struct ignores it.
func (it Item) MarshalJSON() ([]byte, error) {
	type plain Item
	return json.Marshal(struct {
		plain
		Status Status `json:"status"`
	}{plain: plain(it), Status: it.Status()})
}

type Branch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Manager string `json:"manager"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DefaultBranch is where synthetic identities and receipts are attributed.
const DefaultBranch = "Downtown Central"

var Branches = []Branch{
	{ID: "B001", Name: "Downtown Central", City: "Mumbai", Manager: "Rajesh Kumar", Phone: "+91 22 2345 6789", Address: "123 MG Road, Fort"},
	{ID: "B002", Name: "Bandra West", City: "Mumbai", Manager: "Priya Sharma", Phone: "+91 22 2987 6543", Address: "45 Hill Road, Bandra"},
	{ID: "B003", Name: "Koramangala Hub", City: "Bangalore", Manager: "Vikram Singh", Phone: "+91 80 4567 8901", Address: "78 100 Feet Road"},
	{ID: "B004", Name: "Indiranagar", City: "Bangalore", Manager: "Ananya Patel", Phone: "+91 80 3456 7890", Address: "12 CMH Road"},
	{ID: "B005", Name: "Connaught Place", City: "Delhi", Manager: "Amit Verma", Phone: "+91 11 2345 6789", Address: "Block F, CP"},
	{ID: "B006", Name: "Salt Lake", City: "Kolkata", Manager: "Sneha Das", Phone: "+91 33 4567 8901", Address: "Sector V"},
	{ID: "B007", Name: "Anna Nagar", City: "Chennai", Manager: "Karthik Rajan", Phone: "+91 44 2345 6789", Address: "2nd Avenue"},
	{ID: "B008", Name: "Aundh", City: "Pune", Manager: "Meera Joshi", Phone: "+91 20 4567 8901", Address: "DP Road"},
}

// BranchByName returns nil when the name is not a reference branch.
func BranchByName(name string) *Branch {
	for i := range Branches {
		if Branches[i].Name == name {
			b := Branches[i]
			return &b
		}
	}
	return nil
}
