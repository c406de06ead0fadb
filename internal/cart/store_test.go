package cart

import (
	"sync"
	"testing"

	"github.com/example/boutique-shop/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dress = catalog.Product{
		ID:            "1",
		Name:          "Floral Midi Dress",
		Price:         89.99,
		OriginalPrice: 129.99,
	}
	bracelet = catalog.Product{
		ID:    "2",
		Name:  "Rose Gold Bracelet Set",
		Price: 49.99,
	}
	tote = catalog.Product{
		ID:            "3",
		Name:          "Blush Leather Tote",
		Price:         129.99,
		OriginalPrice: 159.99,
	}
)

// ============================================
// AddItem Tests
// ============================================

func TestStore_AddItem_NewLine(t *testing.T) {
	s := NewStore()

	s.AddItem(dress, 1, "M", "Pink")

	require.Equal(t, 1, s.Len())
	line := s.Lines()[0]
	assert.Equal(t, "1", line.Product.ID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "M", line.Size)
	assert.Equal(t, "Pink", line.Color)
}

func TestStore_AddItem_MergesIdenticalKey(t *testing.T) {
	s := NewStore()

	s.AddItem(dress, 1, "M", "Pink")
	s.AddItem(dress, 2, "M", "Pink")
	s.AddItem(dress, 3, "M", "Pink")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 6, s.Lines()[0].Quantity)
}

func TestStore_AddItem_DistinctSizesAreDistinctLines(t *testing.T) {
	s := NewStore()

	s.AddItem(dress, 1, "M", "Pink")
	s.AddItem(dress, 1, "L", "Pink")

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "M", s.Lines()[0].Size)
	assert.Equal(t, "L", s.Lines()[1].Size)
}

func TestStore_AddItem_DistinctColorsAreDistinctLines(t *testing.T) {
	s := NewStore()

	s.AddItem(dress, 1, "M", "Pink")
	s.AddItem(dress, 1, "M", "White")

	assert.Equal(t, 2, s.Len())
}

func TestStore_AddItem_NoVariant(t *testing.T) {
	s := NewStore()

	s.AddItem(bracelet, 1, "", "")
	s.AddItem(bracelet, 1, "", "")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Lines()[0].Quantity)
}

func TestStore_AddItem_NonPositiveQuantityIgnored(t *testing.T) {
	s := NewStore()

	s.AddItem(dress, 0, "", "")
	s.AddItem(dress, -3, "", "")

	assert.Equal(t, 0, s.Len())
}

func TestStore_AddItem_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()

	s.AddItem(tote, 1, "", "Blush")
	s.AddItem(dress, 1, "S", "")
	s.AddItem(bracelet, 1, "", "")

	lines := s.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "3", lines[0].Product.ID)
	assert.Equal(t, "1", lines[1].Product.ID)
	assert.Equal(t, "2", lines[2].Product.ID)
}

// ============================================
// RemoveItem Tests
// ============================================

// Removal is keyed on product id alone, so it takes out every variant of
// that product, not just one line.
func TestStore_RemoveItem_AllVariants(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "M", "Pink")
	s.AddItem(dress, 2, "L", "White")
	s.AddItem(bracelet, 1, "", "")

	s.RemoveItem("1")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "2", s.Lines()[0].Product.ID)
}

func TestStore_RemoveItem_UnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "", "")

	s.RemoveItem("missing")

	assert.Equal(t, 1, s.Len())
}

// ============================================
// UpdateQuantity Tests
// ============================================

func TestStore_UpdateQuantity(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "M", "")

	s.UpdateQuantity("1", 5)

	assert.Equal(t, 5, s.Lines()[0].Quantity)
}

// Like removal, quantity updates are product-id scoped: every variant
// line of the product takes the new quantity.
func TestStore_UpdateQuantity_AllVariants(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "M", "Pink")
	s.AddItem(dress, 2, "L", "White")

	s.UpdateQuantity("1", 7)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, 7, lines[1].Quantity)
}

func TestStore_UpdateQuantity_ZeroRemoves(t *testing.T) {
	removed := NewStore()
	removed.AddItem(dress, 1, "M", "Pink")
	removed.AddItem(dress, 2, "L", "White")
	removed.RemoveItem("1")

	updated := NewStore()
	updated.AddItem(dress, 1, "M", "Pink")
	updated.AddItem(dress, 2, "L", "White")
	updated.UpdateQuantity("1", 0)

	assert.Equal(t, removed.Lines(), updated.Lines())
	assert.Equal(t, 0, updated.Len())
}

func TestStore_UpdateQuantity_NegativeRemoves(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 2, "", "")

	s.UpdateQuantity("1", -1)

	assert.Equal(t, 0, s.Len())
}

func TestStore_UpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 2, "", "")

	s.UpdateQuantity("missing", 9)

	assert.Equal(t, 2, s.Lines()[0].Quantity)
}

// ============================================
// Aggregate Tests
// ============================================

func TestStore_TotalItems_SumsQuantities(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 2, "M", "")
	s.AddItem(bracelet, 3, "", "")

	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, 2, s.Len())
}

func TestStore_TotalPrice(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 2, "M", "")
	s.AddItem(bracelet, 1, "", "")

	assert.InDelta(t, 89.99*2+49.99, s.TotalPrice(), 1e-9)
}

// The total reads Price, never OriginalPrice, and is invariant under the
// order items were added in.
func TestStore_TotalPrice_IgnoresOriginalPriceAndOrder(t *testing.T) {
	forward := NewStore()
	forward.AddItem(dress, 1, "", "")
	forward.AddItem(tote, 2, "", "")

	backward := NewStore()
	backward.AddItem(tote, 2, "", "")
	backward.AddItem(dress, 1, "", "")

	assert.InDelta(t, forward.TotalPrice(), backward.TotalPrice(), 1e-9)
	assert.InDelta(t, 89.99+129.99*2, forward.TotalPrice(), 1e-9)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "", "")
	s.AddItem(bracelet, 4, "", "")

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, 0.0, s.TotalPrice())
}

// ============================================
// Concurrency Tests
// ============================================

// Two browser tabs on the same session hit the same store in parallel.
// Run with -race.
func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	const goroutines = 8
	const iterations = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				s.AddItem(dress, 1, "M", "Pink")
				_ = s.TotalPrice()
				_ = s.TotalItems()
				_ = s.OrderMessage()
				_ = s.Lines()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, s.Len())
	assert.Equal(t, goroutines*iterations, s.TotalItems())
	assert.InDelta(t, 89.99*goroutines*iterations, s.TotalPrice(), 1e-6)
}

func TestStore_ConcurrentMixedMutation(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.AddItem(dress, 1, "M", "")
			s.AddItem(bracelet, 1, "", "")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.UpdateQuantity("1", 2)
			s.RemoveItem("2")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = s.OrderMessage()
			_ = s.Lines()
		}
	}()
	wg.Wait()

	// Invariants hold whatever the interleaving: unique keys, qty >= 1.
	seen := map[[3]string]bool{}
	for _, l := range s.Lines() {
		key := [3]string{l.Product.ID, l.Size, l.Color}
		assert.False(t, seen[key], "duplicate line key %v", key)
		seen[key] = true
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
}

// ============================================
// OrderMessage Tests
// ============================================

func TestStore_OrderMessage_EmptyCart(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "", s.OrderMessage())
}

func TestStore_OrderMessage_SingleLine(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 2, "", "")

	expected := "Hi! I'd like to order:\n\n" +
		"• Floral Midi Dress x2 - $179.98\n\n" +
		"Total: $179.98"
	assert.Equal(t, expected, s.OrderMessage())
}

func TestStore_OrderMessage_VariantsAndMultipleLines(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "M", "Pink")
	s.AddItem(bracelet, 2, "", "")

	expected := "Hi! I'd like to order:\n\n" +
		"• Floral Midi Dress x1 - $89.99 (Size: M) (Color: Pink)\n" +
		"• Rose Gold Bracelet Set x2 - $99.98\n\n" +
		"Total: $189.97"
	assert.Equal(t, expected, s.OrderMessage())
}

func TestStore_OrderMessage_SizeOnly(t *testing.T) {
	s := NewStore()
	s.AddItem(dress, 1, "XS", "")

	assert.Contains(t, s.OrderMessage(), "• Floral Midi Dress x1 - $89.99 (Size: XS)\n\n")
}
