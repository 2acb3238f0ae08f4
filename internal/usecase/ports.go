package usecase

import (
	"context"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/shopspring/decimal"
)

// Persistence and infrastructure ports (kept out of domain).

type ProductRepo interface {
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID returns ErrNotFound when no such product exists.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

type CartRepo interface {
	// GetByUser returns ErrNotFound when the identity has no cart yet.
	GetByUser(ctx context.Context, userID string) (*entity.Cart, error)
	Create(ctx context.Context, cart *entity.Cart) error
	InsertItem(ctx context.Context, cartID string, item entity.CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	DeleteItem(ctx context.Context, cartID, itemID string) error
	DeleteAllItems(ctx context.Context, cartID string) error
	SaveTotal(ctx context.Context, cartID string, total decimal.Decimal) error
}

type OrderRepo interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID returns ErrNotFound when no such order exists.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListByUser returns the identity's orders, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.Order, error)
}

// CartLocker serializes the read-check-write cycle for one identity's cart.
// Lock blocks until the lock is held or ctx is done; the returned func
// releases it.
type CartLocker interface {
	Lock(ctx context.Context, userID string) (func(), error)
}

// OrderEvents publishes order lifecycle events for downstream consumers
// (fulfillment, notifications). Publishing is best effort: checkout does not
// fail when the broker is down.
type OrderEvents interface {
	OrderPlaced(ctx context.Context, order *entity.Order) error
}
