package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	price       string
	description string
	category    string
	image       string
	stock       int
}

var seedCatalog = []seedProduct{
	{"Wireless Headphones", "79.99", "High-quality wireless headphones with noise cancellation", "Electronics",
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", 50},
	{"Smart Watch", "199.99", "Feature-rich smartwatch with fitness tracking", "Electronics",
		"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400", 30},
	{"Laptop Backpack", "49.99", "Durable backpack with padded laptop compartment", "Accessories",
		"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400", 75},
	{"USB-C Hub", "34.99", "Multi-port USB-C hub with HDMI and card reader", "Electronics",
		"https://images.unsplash.com/photo-1625948515291-69613efd103f?w=400", 100},
	{"Mechanical Keyboard", "129.99", "RGB mechanical keyboard with brown switches", "Electronics",
		"https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400", 40},
	{"Wireless Mouse", "29.99", "Ergonomic wireless mouse with precision tracking", "Electronics",
		"https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400", 80},
	{"Phone Stand", "19.99", "Adjustable aluminum phone stand for desk", "Accessories",
		"https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=400", 120},
	{"Portable Charger", "39.99", "20000mAh portable power bank with fast charging", "Electronics",
		"https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=400", 60},
	{"Desk Lamp", "44.99", "LED desk lamp with adjustable brightness and color temperature", "Home",
		"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400", 45},
	{"Water Bottle", "24.99", "Insulated stainless steel water bottle, 32oz", "Lifestyle",
		"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400", 90},
}

// SeedProducts inserts the demo catalog once; it is a no-op when the products
// table already has rows.
func SeedProducts(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedCatalog {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		_, err = db.ExecContext(ctx, `
INSERT INTO products (id,name,price,description,category,image,stock,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,NOW(),NOW())`,
			uuid.NewString(), p.name, price, p.description, p.category, p.image, p.stock)
		if err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}
	return nil
}
