package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID  = errors.New("catalog: duplicate item id")
	ErrDuplicateSKU = errors.New("catalog: duplicate sku")
	ErrInvalidItem  = errors.New("catalog: invalid item")
)

// Store is the session's read-only catalog snapshot.
type Store struct {
	items []Item
	byID  map[string]int
}

// NewStore validates items and copies them; later changes to the input slice are not observed.
func NewStore(items []Item) (*Store, error) {
	s := &Store{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	skus := make(map[string]struct{}, len(items))
	for i, it := range items {
		if err := validate(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, ok := s.byID[it.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		if _, ok := skus[it.SKU]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, it.SKU)
		}
		skus[it.SKU] = struct{}{}
		s.byID[it.ID] = len(s.items)
		s.items = append(s.items, it)
	}
	return s, nil
}

func validate(it Item) error {
	switch {
	case it.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	case it.SKU == "":
		return fmt.Errorf("%w: %s has empty sku", ErrInvalidItem, it.ID)
	case it.Price < 0:
		return fmt.Errorf("%w: %s has negative price", ErrInvalidItem, it.ID)
	case it.Stock < 0:
		return fmt.Errorf("%w: %s has negative stock", ErrInvalidItem, it.ID)
	case !KnownCategory(it.Category):
		return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidItem, it.ID, it.Category)
	}
	return nil
}

// Items returns a copy in catalog order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(id string) (Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }
