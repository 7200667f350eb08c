package structs

// External shapes served to the frontend. Field names follow the frontend
// contract and must not change casually.

// StoreOffer is one store's current offer for a product.
type StoreOffer struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"` // reserved, always null for now
	Shipping      string   `json:"shipping"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	AffiliateLink string   `json:"affiliateLink"`
	InStock       bool     `json:"inStock"`
}

// PricePoint is one deduplicated entry of a product's price timeline.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
	Store string  `json:"store"`
}

// PriceStats aggregates in-stock prices across the full history. Both
// fields are 0 when no priced observation exists. Served flattened as the
// minPrice/avgPrice fields of ProductView.
type PriceStats struct {
	Min float64
	Avg float64
}

// ProductView is the assembled per-product record. Every field is always
// present; slices are empty rather than null.
type ProductView struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Image        string       `json:"image"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
	Stores       []StoreOffer `json:"stores"`
	PriceHistory []PricePoint `json:"priceHistory"`
	MinPrice     float64      `json:"minPrice"`
	AvgPrice     float64      `json:"avgPrice"`
}
