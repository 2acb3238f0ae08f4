package usecase

import (
	"context"
	"errors"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the projection every cart endpoint returns: each line joined to
// its product's current name/price/image, per-line subtotal, and a total
// recomputed from live prices (never the stored one).
type CartView struct {
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

type CartLine struct {
	ID       string          `json:"_id"`
	Product  LineProduct     `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type LineProduct struct {
	ID    string          `json:"_id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// Cart implements the cart operations: lazily created per identity, one line
// per product, totals recomputed on every read and mutation. Every operation
// runs under the per-identity lock so concurrent requests for the same cart
// cannot interleave their read-check-write cycles.
type Cart struct {
	products ProductRepo
	carts    CartRepo
	locks    CartLocker
}

func NewCart(products ProductRepo, carts CartRepo, locks CartLocker) *Cart {
	return &Cart{products: products, carts: carts, locks: locks}
}

// View returns the identity's cart, creating an empty one on first access.
func (s *Cart) View(ctx context.Context, userID string) (*CartView, error) {
	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, cart)
}

// AddItem puts quantity units of a product into the cart. If the product is
// already a line, its quantity grows; the combined quantity must not exceed
// the product's current stock.
func (s *Cart) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if productID == "" {
		return nil, invalidArg("Product ID is required")
	}
	if quantity < 1 {
		return nil, invalidArg("Quantity must be at least 1")
	}

	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	product, err := s.products.GetByID(ctx, productID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("Product not found")
	}
	if err != nil {
		return nil, err
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if line := cart.ItemByProduct(productID); line != nil {
		next := line.Quantity + quantity
		if next > product.Stock {
			return nil, &InsufficientStockError{ProductID: productID, Available: product.Stock}
		}
		if err := s.carts.UpdateItemQuantity(ctx, cart.ID, line.ID, next); err != nil {
			return nil, err
		}
		line.Quantity = next
	} else {
		if quantity > product.Stock {
			return nil, &InsufficientStockError{ProductID: productID, Available: product.Stock}
		}
		item := entity.CartItem{ID: uuid.NewString(), ProductID: productID, Quantity: quantity}
		if err := s.carts.InsertItem(ctx, cart.ID, item); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}

	return s.project(ctx, cart)
}

// UpdateItemQuantity replaces a line's quantity. Zero or negative targets are
// rejected here; removal is a separate operation at this layer.
func (s *Cart) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, invalidArg("Valid quantity is required (minimum 1)")
	}

	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := cart.ItemByID(itemID)
	if line == nil {
		return nil, notFound("Cart item not found")
	}

	product, err := s.products.GetByID(ctx, line.ProductID)
	if errors.Is(err, ErrNotFound) {
		// the referenced product is gone; the line is dead weight
		return nil, notFound("Cart item not found")
	}
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, &InsufficientStockError{ProductID: product.ID, Available: product.Stock}
	}

	if err := s.carts.UpdateItemQuantity(ctx, cart.ID, line.ID, quantity); err != nil {
		return nil, err
	}
	line.Quantity = quantity

	return s.project(ctx, cart)
}

// RemoveItem deletes one line from the cart.
func (s *Cart) RemoveItem(ctx context.Context, userID, itemID string) (*CartView, error) {
	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cart.ItemByID(itemID) == nil {
		return nil, notFound("Cart item not found")
	}
	if err := s.carts.DeleteItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}

	return s.project(ctx, cart)
}

// Clear empties the cart and zeroes the stored total. Idempotent.
func (s *Cart) Clear(ctx context.Context, userID string) (*CartView, error) {
	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.DeleteAllItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	if err := s.carts.SaveTotal(ctx, cart.ID, decimal.Zero); err != nil {
		return nil, err
	}
	return &CartView{Items: []CartLine{}, Total: decimal.Zero}, nil
}

func (s *Cart) getOrCreate(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		cart = &entity.Cart{ID: uuid.NewString(), UserID: userID, Total: decimal.Zero}
		if err := s.carts.Create(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	return cart, err
}

// project joins each line to its product, recomputes subtotals and the grand
// total from current prices, and persists the total when it drifted from the
// stored value. Lines whose product disappeared from the catalog are skipped
// rather than failing the whole read.
func (s *Cart) project(ctx context.Context, cart *entity.Cart) (*CartView, error) {
	view := &CartView{Items: []CartLine{}, Total: decimal.Zero}
	for _, item := range cart.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, CartLine{
			ID: item.ID,
			Product: LineProduct{
				ID:    product.ID,
				Name:  product.Name,
				Price: product.Price,
				Image: product.Image,
			},
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
		view.ItemCount += item.Quantity
	}

	if !view.Total.Equal(cart.Total) {
		if err := s.carts.SaveTotal(ctx, cart.ID, view.Total); err != nil {
			return nil, err
		}
		cart.Total = view.Total
	}
	return view, nil
}
