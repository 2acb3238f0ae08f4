package entity

import "github.com/shopspring/decimal"

// Cart holds one identity's pending purchase. A product appears in at most
// one line; re-adding it bumps the line quantity instead. Total is a stored
// read optimization and is recomputed from live prices before it is trusted.
type Cart struct {
	ID     string
	UserID string
	Items  []CartItem
	Total  decimal.Decimal
}

// CartItem references a catalog product; it does not own a copy of it.
// Quantity is always >= 1: a target of zero means removal, never a stored
// zero line.
type CartItem struct {
	ID        string
	ProductID string
	Quantity  int
}

// ItemByProduct returns the line holding productID, or nil.
func (c *Cart) ItemByProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemByID returns the line with the given line id, or nil.
func (c *Cart) ItemByID(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
