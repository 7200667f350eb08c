package tables

import (
	"time"

	"github.com/google/uuid"
)

// PriceObservation is one scraped (store, product, time) price record.
// Rows are append-only: the scraper inserts, the read path never mutates.
type PriceObservation struct {
	tableName    struct{}  `bun:"table:price_observations,alias:po"`
	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	ProductKey   string    `bun:"product_key,notnull" json:"product_key"`
	Store        string    `bun:"store,notnull" json:"store"`
	ObservedAt   time.Time `bun:"observed_at,notnull" json:"observed_at"`
	Price        float64   `bun:"price,notnull,default:0" json:"price"` // 0 means out of stock
	RawName      string    `bun:"raw_name" json:"raw_name"`
	ImageURL     string    `bun:"image_url,default:''" json:"image_url,omitempty"`
	Description  string    `bun:"description,default:''" json:"description,omitempty"`
	Category     string    `bun:"category,default:''" json:"category,omitempty"`
	AffiliateURL string    `bun:"affiliate_url" json:"affiliate_url"`
	RunID        uuid.UUID `bun:"run_id,type:uuid,nullzero" json:"run_id,omitempty"`
}

// InStock reports whether the observation carries a real price. Price 0 is
// the out-of-stock sentinel, never a valid price.
func (o *PriceObservation) InStock() bool {
	return o.Price > 0
}
