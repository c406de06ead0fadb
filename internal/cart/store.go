package cart

import (
	"fmt"
	"strings"
	"sync"

	"github.com/example/boutique-shop/internal/catalog"
)

// Line is one entry in the cart: a product, how many of it, and the
// selected variant. An empty size or color means no variant was chosen.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// LineTotal is the line's quantity-scaled price. Discount pricing
// (OriginalPrice) never participates.
func (l Line) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Store holds the cart's line items in insertion order. The order carries
// no meaning but is kept stable for display.
//
// Uniqueness keys are asymmetric on purpose, matching the storefront's
// observed behavior: AddItem merges on (product id, size, color), while
// RemoveItem and UpdateQuantity apply to every line sharing the product id,
// whatever its variant. See the store tests for the exact consequences.
//
// No operation returns an error. Unknown product ids are no-ops and
// non-positive quantities are treated as removal requests.
//
// A Store is shared by every request carrying the same session token, so
// all operations are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	lines []Line
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// AddItem puts quantity units of the product into the cart. A line with
// the same (product id, size, color) absorbs the quantity; otherwise a
// new line is appended. Quantity is caller-supplied and unbounded; there
// is no stock model to validate against. quantity <= 0 is ignored.
func (s *Store) AddItem(p catalog.Product, quantity int, size, color string) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		l := &s.lines[i]
		if l.Product.ID == p.ID && l.Size == size && l.Color == color {
			l.Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, Line{Product: p, Quantity: quantity, Size: size, Color: color})
}

// RemoveItem deletes every line for the product id, across all variants.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLines(productID)
}

func (s *Store) removeLines(productID string) {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

// UpdateQuantity sets the quantity on every line for the product id,
// across all variants. quantity <= 0 removes the product entirely, so an
// existing line never holds a non-positive quantity.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLines(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// TotalItems sums quantities across all lines, not the line count.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums price x quantity across all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPrice()
}

func (s *Store) totalPrice() float64 {
	total := 0.0
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// OrderMessage renders the cart as a WhatsApp order message: a greeting,
// one bullet per line with its quantity-scaled total and any selected
// variant, then the cart total. An empty cart yields the empty string.
func (s *Store) OrderMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Hi! I'd like to order:\n\n")
	for i, l := range s.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s x%d - $%.2f", l.Product.Name, l.Quantity, l.LineTotal())
		if l.Size != "" {
			fmt.Fprintf(&b, " (Size: %s)", l.Size)
		}
		if l.Color != "" {
			fmt.Fprintf(&b, " (Color: %s)", l.Color)
		}
	}
	fmt.Fprintf(&b, "\n\nTotal: $%.2f", s.totalPrice())
	return b.String()
}
