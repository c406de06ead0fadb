package catalog

// Default returns the built-in boutique catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultCategories)
}

var defaultCategories = []Category{
	{ID: "clothing", Name: "Clothing", Slug: "clothing"},
	{ID: "accessories", Name: "Accessories", Slug: "accessories"},
	{ID: "footwear", Name: "Footwear", Slug: "footwear"},
	{ID: "beauty", Name: "Beauty", Slug: "beauty"},
	{ID: "bags", Name: "Bags", Slug: "bags"},
	{ID: "new-arrivals", Name: "New Arrivals", Slug: "new-arrivals"},
}

var defaultProducts = []Product{
	{
		ID:            "1",
		Name:          "Floral Midi Dress",
		Price:         89.99,
		OriginalPrice: 129.99,
		ImageURL:      "/assets/product-1.jpg",
		Category:      "clothing",
		Rating:        4.8,
		Reviews:       124,
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Pink", "White", "Lavender"},
		Description:   "Elegant floral midi dress perfect for any occasion. Features a flattering V-neckline and flowing silhouette.",
		IsBestSeller:  true,
	},
	{
		ID:          "2",
		Name:        "Rose Gold Bracelet Set",
		Price:       49.99,
		ImageURL:    "/assets/product-2.jpg",
		Category:    "accessories",
		Rating:      4.9,
		Reviews:     89,
		Description: "Stunning rose gold bracelet set with delicate crystal accents. Perfect for layering or wearing alone.",
		IsNew:       true,
	},
	{
		ID:            "3",
		Name:          "Blush Leather Tote",
		Price:         129.99,
		OriginalPrice: 159.99,
		ImageURL:      "/assets/product-3.jpg",
		Category:      "bags",
		Rating:        4.7,
		Reviews:       156,
		Colors:        []string{"Blush", "Cream", "Black"},
		Description:   "Spacious and elegant leather tote bag. Features multiple compartments and premium hardware.",
		IsBestSeller:  true,
	},
	{
		ID:           "4",
		Name:         "Nude Stiletto Heels",
		Price:        99.99,
		ImageURL:     "/assets/product-4.jpg",
		Category:     "footwear",
		Rating:       4.6,
		Reviews:      78,
		Sizes:        []string{"36", "37", "38", "39", "40", "41"},
		Colors:       []string{"Nude", "Black", "Red"},
		Description:  "Classic pointed-toe stilettos in elegant nude leather. 4-inch heel with comfortable padding.",
		IsBestSeller: true,
	},
	{
		ID:          "5",
		Name:        "Rose Lipstick Collection",
		Price:       45.99,
		ImageURL:    "/assets/product-5.jpg",
		Category:    "beauty",
		Rating:      4.9,
		Reviews:     234,
		Colors:      []string{"Rose Pink", "Berry", "Coral"},
		Description: "Luxurious matte lipstick set featuring three stunning rose shades. Long-lasting and hydrating formula.",
		IsNew:       true,
	},
	{
		ID:          "6",
		Name:        "Lavender Ruffle Blouse",
		Price:       59.99,
		ImageURL:    "/assets/product-6.jpg",
		Category:    "clothing",
		Rating:      4.5,
		Reviews:     67,
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Lavender", "White", "Blush"},
		Description: "Romantic ruffle blouse in soft lavender. Features statement sleeves and feminine details.",
		IsNew:       true,
	},
	{
		ID:            "7",
		Name:          "Pearl Necklace Set",
		Price:         79.99,
		OriginalPrice: 99.99,
		ImageURL:      "/assets/product-7.jpg",
		Category:      "accessories",
		Rating:        4.8,
		Reviews:       112,
		Description:   "Elegant layered pearl necklace set with gold accents. Timeless pieces for any wardrobe.",
		IsBestSeller:  true,
	},
	{
		ID:          "8",
		Name:        "Pink Pleated Skirt",
		Price:       69.99,
		ImageURL:    "/assets/product-8.jpg",
		Category:    "clothing",
		Rating:      4.7,
		Reviews:     93,
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Pink", "Black", "Cream"},
		Description: "Beautiful pleated midi skirt in soft pink satin. Elastic waistband for comfortable fit.",
	},
}
