package domain

// Product is a catalog item. Cart and wishlist keep their own snapshots of
// these records, keyed by ID; a later catalog refresh does not rewrite them.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         int64    `json:"price"`
	DiscountPrice *int64   `json:"discount_price,omitempty"`
	Image         string   `json:"image"`
	Weight        string   `json:"weight"`
	Ingredients   []string `json:"ingredients"`
	ShelfLife     string   `json:"shelf_life"`
	InStock       bool     `json:"in_stock"`
	Featured      bool     `json:"featured,omitempty"`
	Bestseller    bool     `json:"bestseller,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewsCount  int      `json:"reviews_count"`
}

// EffectivePrice returns the discount price when set, otherwise the base price.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Category is a merchandising grouping of products.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Count int    `json:"count"`
}

// ProductDraft is a product submitted for listing, before the server assigns
// identity, slug, and social-proof defaults.
type ProductDraft struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         int64    `json:"price"`
	DiscountPrice *int64   `json:"discount_price,omitempty"`
	Image         string   `json:"image"`
	Weight        string   `json:"weight"`
	Ingredients   []string `json:"ingredients"`
	ShelfLife     string   `json:"shelf_life"`
	InStock       bool     `json:"in_stock"`
}
