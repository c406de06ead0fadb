package wishlist

import (
	"sync"

	"github.com/example/boutique-shop/internal/catalog"
)

// Store holds saved products keyed by product id, in the order they were
// first added. Variants play no role here: one entry per product.
//
// All operations are total; unknown ids and duplicate adds are no-ops.
// Like the cart, a Store is shared by every request on the same session,
// so all operations are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// NewStore returns an empty wishlist.
func NewStore() *Store {
	return &Store{}
}

// Add saves the product. Adding a product that is already saved does
// nothing, so Add is idempotent.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(p.ID) {
		return
	}
	s.products = append(s.products, p)
}

// Remove drops the entry for the product id, if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Contains reports whether the product id is saved.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contains(productID)
}

func (s *Store) contains(productID string) bool {
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
}

// Products returns the saved products in insertion order.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of saved products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
