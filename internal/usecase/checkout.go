package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Syntactic check only: local-part@domain with a dot in the domain. Full RFC
// validation is deliberately out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const receiptMessage = "Thank you for your order! This is a mock checkout - no payment has been processed."

// Receipt is the response view of a just-completed order.
type Receipt struct {
	OrderID       string          `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []ReceiptLine   `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        entity.Status   `json:"status"`
	Message       string          `json:"message"`
}

type ReceiptLine struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Checkout turns a non-empty cart into an immutable order and empties the
// cart. It shares the per-identity lock with the cart service, so a checkout
// and a cart mutation for the same identity cannot interleave.
type Checkout struct {
	products ProductRepo
	carts    CartRepo
	orders   OrderRepo
	locks    CartLocker
	events   OrderEvents // may be nil when no broker is configured
}

func NewCheckout(products ProductRepo, carts CartRepo, orders OrderRepo, locks CartLocker, events OrderEvents) *Checkout {
	return &Checkout{products: products, carts: carts, orders: orders, locks: locks, events: events}
}

// Checkout validates the customer details, snapshots the cart lines at
// current prices into an order, persists it, and empties the cart. No stock
// is decremented; stock is informational at this boundary.
func (s *Checkout) Checkout(ctx context.Context, userID, name, email string) (*Receipt, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, invalidArg("Name and email are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalidArg("Invalid email format")
	}

	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := s.carts.GetByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Snapshot each line against the product's current price. Lines whose
	// product vanished from the catalog are dropped, same as the cart view.
	items := make([]entity.OrderItem, 0, len(cart.Items))
	total := decimal.Zero
	for _, line := range cart.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &entity.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		CustomerName:  name,
		CustomerEmail: email,
		Items:         items,
		Total:         total,
		Status:        entity.StatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.OrderPlaced(ctx, order); err != nil {
			logging.FromCtx(ctx).Warn("publish order.placed failed", "order_id", order.ID, "error", err)
		}
	}

	if err := s.carts.DeleteAllItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	if err := s.carts.SaveTotal(ctx, cart.ID, decimal.Zero); err != nil {
		return nil, err
	}

	return buildReceipt(order), nil
}

// ListOrders returns the identity's most recent orders, newest first.
func (s *Checkout) ListOrders(ctx context.Context, userID string, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.orders.ListByUser(ctx, userID, limit)
}

// GetOrder returns one order by id.
func (s *Checkout) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("Order not found")
	}
	return order, err
}

func buildReceipt(order *entity.Order) *Receipt {
	lines := make([]ReceiptLine, len(order.Items))
	for i, item := range order.Items {
		lines[i] = ReceiptLine{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
	}
	return &Receipt{
		OrderID:       order.ID,
		OrderNumber:   orderNumber(order),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         lines,
		Total:         order.Total,
		Timestamp:     order.CreatedAt,
		Status:        order.Status,
		Message:       receiptMessage,
	}
}

// orderNumber derives the display number from the order's id rather than the
// clock, so two checkouts in the same instant still get distinct numbers.
func orderNumber(order *entity.Order) string {
	return fmt.Sprintf("ORD-%s-%s",
		order.CreatedAt.Format("20060102"),
		strings.ToUpper(order.ID[:8]))
}
