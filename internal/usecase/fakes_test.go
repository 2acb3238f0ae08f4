package usecase

import (
	"context"
	"sync"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/shopspring/decimal"
)

// In-memory implementations of the ports. They hand out copies the way a SQL
// repo would, so service-side mutations only stick after an explicit write.

type memProductRepo struct {
	mu       sync.Mutex
	order    []string
	products map[string]entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]entity.Product{}}
}

func (r *memProductRepo) put(p entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.products[p.ID] = p
}

func (r *memProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

type memCartRepo struct {
	mu     sync.Mutex
	byUser map[string]*entity.Cart
	byID   map[string]*entity.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{byUser: map[string]*entity.Cart{}, byID: map[string]*entity.Cart{}}
}

func cloneCart(c *entity.Cart) *entity.Cart {
	cp := *c
	cp.Items = append([]entity.CartItem(nil), c.Items...)
	return &cp
}

func (r *memCartRepo) GetByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCart(cart), nil
}

func (r *memCartRepo) Create(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneCart(cart)
	r.byUser[cp.UserID] = cp
	r.byID[cp.ID] = cp
	return nil
}

func (r *memCartRepo) InsertItem(ctx context.Context, cartID string, item entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.byID[cartID]
	if !ok {
		return ErrNotFound
	}
	cart.Items = append(cart.Items, item)
	return nil
}

func (r *memCartRepo) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.byID[cartID]
	if !ok {
		return ErrNotFound
	}
	if line := cart.ItemByID(itemID); line != nil {
		line.Quantity = quantity
	}
	return nil
}

func (r *memCartRepo) DeleteItem(ctx context.Context, cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.byID[cartID]
	if !ok {
		return ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memCartRepo) DeleteAllItems(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.byID[cartID]; ok {
		cart.Items = nil
	}
	return nil
}

func (r *memCartRepo) SaveTotal(ctx context.Context, cartID string, total decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.byID[cartID]; ok {
		cart.Total = total
	}
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []entity.Order
}

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{} }

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	cp.Items = append([]entity.OrderItem(nil), order.Items...)
	r.orders = append(r.orders, cp)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			cp := r.orders[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memOrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Order{}
	for i := len(r.orders) - 1; i >= 0 && len(out) < limit; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

type noopLocker struct{}

func (noopLocker) Lock(ctx context.Context, userID string) (func(), error) {
	return func() {}, nil
}

type memEvents struct {
	mu        sync.Mutex
	published []entity.Order
}

func (e *memEvents) OrderPlaced(ctx context.Context, order *entity.Order) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.published = append(e.published, *order)
	return nil
}
