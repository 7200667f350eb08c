package tables

import "time"

// Coupon is a manually curated discount code for one store.
type Coupon struct {
	tableName   struct{}  `bun:"table:coupons,alias:c"`
	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Code        string    `bun:"code,notnull" json:"code"`
	Description string    `bun:"description" json:"description"`
	ValidUntil  string    `bun:"valid_until" json:"valid_until"`
	Store       string    `bun:"store" json:"store"`
	Link        string    `bun:"link" json:"link"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
