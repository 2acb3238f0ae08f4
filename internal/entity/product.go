package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record. The catalog is seeded once at startup and is
// read-only afterwards; stock is checked by the cart but never decremented
// at checkout.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
