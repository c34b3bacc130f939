package cart

import (
	"sync"

	"github.com/cyralabs/cyra-shop-backend/internal/product"
)

// Item describes a product along with its quantity in the cart.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Store is the single shared cart/wishlist state. All mutation goes through
// its methods; no caller touches the underlying collections directly.
type Store struct {
	mu       sync.RWMutex
	items    []Item
	wishlist map[string]struct{}
}

func NewStore() *Store {
	return &Store{wishlist: make(map[string]struct{})}
}

// AddItem inserts the product with quantity 1, or increments the existing
// line item. It never fails.
func (s *Store) AddItem(p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: 1})
}

// RemoveItem deletes the line item if present; a no-op otherwise. This is the
// only path to an empty line — quantities never reach zero on their own.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies delta to the line's quantity, flooring at 1.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			q := s.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.items[i].Quantity = q
			return
		}
	}
}

// Items returns a snapshot of the line items in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of units across all line items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Total recomputes price x quantity over the current line items on every call.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := 0.0
	for _, it := range s.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// ToggleWishlist adds the id if absent, removes it if present. Returns true
// when the id is on the wishlist after the call.
func (s *Store) ToggleWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wishlist[id]; ok {
		delete(s.wishlist, id)
		return false
	}
	s.wishlist[id] = struct{}{}
	return true
}

// Wishlist returns the wishlisted product ids. No ordering guarantee.
func (s *Store) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.wishlist))
	for id := range s.wishlist {
		out = append(out, id)
	}
	return out
}

// InWishlist reports whether the id is currently wishlisted.
func (s *Store) InWishlist(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.wishlist[id]
	return ok
}
