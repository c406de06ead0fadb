package catalog

import "sort"

// Product is a single purchasable item. Products are immutable for the
// lifetime of a session; the catalog is the sole owner.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Description   string   `json:"description"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsBestSeller  bool     `json:"is_best_seller,omitempty"`
}

// Category is a browsable product grouping.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SlugNewArrivals is a virtual category resolved against the IsNew flag
// rather than the products' category field.
const SlugNewArrivals = "new-arrivals"

// Catalog is a read-only ordered product collection. It exposes no
// mutation API; consumers only query.
type Catalog struct {
	products   []Product
	categories []Category
	byID       map[string]int
}

// New builds a catalog over the given products and categories.
// Product order is preserved.
func New(products []Product, categories []Category) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{
		products:   products,
		categories: categories,
		byID:       byID,
	}
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns all browsable categories.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ProductByID looks up a product by its identifier.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// ProductsByCategory returns the products tagged with the given category
// slug. The new-arrivals slug selects by the IsNew flag instead.
func (c *Catalog) ProductsByCategory(slug string) []Product {
	if slug == SlugNewArrivals {
		return c.NewArrivals()
	}
	return c.filter(func(p Product) bool { return p.Category == slug })
}

// BestSellers returns the products flagged as best sellers.
func (c *Catalog) BestSellers() []Product {
	return c.filter(func(p Product) bool { return p.IsBestSeller })
}

// NewArrivals returns the products flagged as new.
func (c *Catalog) NewArrivals() []Product {
	return c.filter(func(p Product) bool { return p.IsNew })
}

// Sort options for product listings.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// Sort returns the products ordered by the given option: price ascending
// or descending, new arrivals first, or best sellers first. Unknown
// options fall back to popular, the storefront's default. Sorting is
// stable, so ties keep catalog order. The input is not modified.
func Sort(products []Product, option string) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch option {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsBestSeller && !out[j].IsBestSeller })
	}
	return out
}

func (c *Catalog) filter(keep func(Product) bool) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
