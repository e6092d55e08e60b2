package inventory

import (
	"strings"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
)

// AttentionLimit caps the low-stock alert list shown on the dashboard.
const AttentionLimit = 10

type Stats struct {
	Total      int `json:"total"`
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// NeedsAttention is the count of low and out of stock items.
func (s Stats) NeedsAttention() int { return s.LowStock + s.OutOfStock }

// CountStatuses tallies items by derived status.
func CountStatuses(items []catalog.Item) Stats {
	var s Stats
	for _, it := range items {
		s.Total++
		switch it.Status() {
		case catalog.StatusInStock:
			s.InStock++
		case catalog.StatusLowStock:
			s.LowStock++
		case catalog.StatusOutOfStock:
			s.OutOfStock++
		}
	}
	return s
}

// BranchStats tallies only the items stocked at branch.
func BranchStats(items []catalog.Item, branch string) Stats {
	var local []catalog.Item
	for _, it := range items {
		if it.Branch == branch {
			local = append(local, it)
		}
	}
	return CountStatuses(local)
}

// NeedsAttention returns low or out of stock items in catalog order, at most limit
// of them. limit <= 0 means no cap.
func NeedsAttention(items []catalog.Item, limit int) []catalog.Item {
	var out []catalog.Item
	for _, it := range items {
		if it.Status() == catalog.StatusInStock {
			continue
		}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Available keeps items that can be sold at the counter.
func Available(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if it.Stock > 0 {
			out = append(out, it)
		}
	}
	return out
}

// SearchCounter is the POS grid filter: in-stock items whose name or sku contains
// search, optionally limited to one category. It keeps catalog order.
func SearchCounter(items []catalog.Item, search, category string) []catalog.Item {
	lowered := strings.ToLower(search)
	cat := activeCategory(category)
	var out []catalog.Item
	for _, it := range Available(items) {
		if lowered != "" &&
			!strings.Contains(strings.ToLower(it.Name), lowered) &&
			!strings.Contains(strings.ToLower(it.SKU), lowered) {
			continue
		}
		if cat != "" && it.Category != cat {
			continue
		}
		out = append(out, it)
	}
	return out
}
