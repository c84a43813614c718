// internal/domain/cart/store.go
package cart

import (
	"context"
	"log"
	"strings"
)

// DefaultStoreName is the fixed key the cart persists under.
const DefaultStoreName = "cart-storage"

// Item represents one line item in the cart.
// Uniqueness is defined by (ProductID, Size, Color); Color holds the
// color value as encoded by the storefront (e.g. "#1f2a44").
type Item struct {
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Image     string  `json:"image" firestore:"image"`
	Size      string  `json:"size" firestore:"size"`
	Color     string  `json:"color" firestore:"color"`
}

// State is the persisted shape of the cart. The persister writes it as a
// full-overwrite document, never an append log.
type State struct {
	Items []Item `json:"items" firestore:"items"`
}

// Store owns the in-memory line items for one client session and keeps them
// synchronized with the injected persister. Operations are synchronous and
// never fail: persistence errors are logged and swallowed, matching the
// storefront behavior where storage-integrity handling lives outside the cart.
type Store struct {
	name      string
	items     []Item
	persister Persister
}

// NewStore creates a store and restores any previously persisted state.
// A missing or corrupt state loads as an empty cart.
func NewStore(ctx context.Context, name string, p Persister) *Store {
	n := strings.TrimSpace(name)
	if n == "" {
		n = DefaultStoreName
	}

	s := &Store{name: n, persister: p}

	if p != nil {
		st, ok, err := p.Load(ctx, n)
		if err != nil {
			log.Printf("[cart_store] WARN: load %q failed, starting empty: %v", n, err)
		} else if ok {
			s.items = cloneItems(st.Items)
		}
	}
	return s
}

// AddItem merges by identity key: an existing (ProductID, Size, Color) line
// has its quantity incremented by item.Quantity, otherwise the item is
// appended. No upper bound is enforced on quantity.
func (s *Store) AddItem(ctx context.Context, item Item) {
	idx := s.findIndex(item.ProductID, item.Size, item.Color)
	if idx >= 0 {
		s.items[idx].Quantity += item.Quantity
	} else {
		s.items = append(s.items, item)
	}
	s.persist(ctx)
}

// RemoveItem removes the unique matching line item. Absent key is a no-op,
// not an error.
func (s *Store) RemoveItem(ctx context.Context, productID, size, color string) {
	idx := s.findIndex(productID, size, color)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist(ctx)
}

// UpdateQuantity sets quantity directly (not additive) for the matching line
// item; no-op if absent.
//
// Quantity is deliberately not validated: non-positive values are accepted
// and produce a zero/negative-quantity line item. Known gap, pinned by test
// until product intent is clarified.
func (s *Store) UpdateQuantity(ctx context.Context, productID, size, color string, quantity int) {
	idx := s.findIndex(productID, size, color)
	if idx < 0 {
		return
	}
	s.items[idx].Quantity = quantity
	s.persist(ctx)
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) {
	s.items = []Item{}
	s.persist(ctx)
}

// Items returns a snapshot of the current line items.
func (s *Store) Items() []Item {
	return cloneItems(s.items)
}

// ItemCount is the sum of all quantities. It reflects the current in-memory
// state synchronously (no caching); used for the UI badge.
func (s *Store) ItemCount() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Total is the sum of price x quantity across all line items.
func (s *Store) Total() float64 {
	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) findIndex(productID, size, color string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID &&
			s.items[i].Size == size &&
			s.items[i].Color == color {
			return i
		}
	}
	return -1
}

// persist writes the full item collection. Failures are swallowed here;
// the persister's own integrity handling owns recovery.
func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.name, State{Items: cloneItems(s.items)}); err != nil {
		log.Printf("[cart_store] WARN: persist %q failed: %v", s.name, err)
	}
}

func cloneItems(src []Item) []Item {
	if len(src) == 0 {
		return []Item{}
	}
	cp := make([]Item, len(src))
	copy(cp, src)
	return cp
}
