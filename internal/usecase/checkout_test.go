package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheckout(products ...entity.Product) (*Checkout, *Cart, *memOrderRepo, *memEvents) {
	pr := newMemProductRepo()
	for _, p := range products {
		pr.put(p)
	}
	cr := newMemCartRepo()
	or := newMemOrderRepo()
	events := &memEvents{}
	cartSvc := NewCart(pr, cr, noopLocker{})
	return NewCheckout(pr, cr, or, noopLocker{}, events), cartSvc, or, events
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, orders, _ := newTestCheckout()

	_, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.orders)
}

func TestCheckoutValidatesCustomer(t *testing.T) {
	svc, cart, orders, _ := newTestCheckout(product("p1", "Desk Lamp", "44.99", 45))

	_, err := cart.AddItem(context.Background(), testUser, "p1", 1)
	require.NoError(t, err)

	cases := []struct {
		name, custName, email, wantMsg string
	}{
		{"missing name", "", "ada@example.com", "Name and email are required"},
		{"missing email", "Ada", "", "Name and email are required"},
		{"whitespace name", "   ", "ada@example.com", "Name and email are required"},
		{"bad email", "Ada", "not-an-email", "Invalid email format"},
		{"email with spaces", "Ada", "a da@example.com", "Invalid email format"},
		{"email without dot", "Ada", "ada@example", "Invalid email format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Checkout(context.Background(), testUser, tc.custName, tc.email)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.EqualError(t, err, tc.wantMsg)
		})
	}

	// validation failures never create an order or touch the cart
	assert.Empty(t, orders.orders)
	view, err := cart.View(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCheckoutHappyPath(t *testing.T) {
	svc, cart, orders, events := newTestCheckout(product("p1", "Desk Lamp", "10.00", 5))

	_, err := cart.AddItem(context.Background(), testUser, "p1", 2)
	require.NoError(t, err)

	receipt, err := svc.Checkout(context.Background(), testUser, "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.OrderID)
	assert.True(t, strings.HasPrefix(receipt.OrderNumber, "ORD-"), "got %q", receipt.OrderNumber)
	assert.Equal(t, "Ada Lovelace", receipt.CustomerName)
	assert.Equal(t, "ada@example.com", receipt.CustomerEmail)
	assert.Equal(t, entity.StatusCompleted, receipt.Status)
	assert.Equal(t, "20", receipt.Total.String())
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Desk Lamp", receipt.Items[0].Name)
	assert.Equal(t, 2, receipt.Items[0].Quantity)
	assert.Equal(t, "20", receipt.Items[0].Subtotal.String())
	assert.Contains(t, receipt.Message, "mock checkout")

	// the order was persisted and the event published
	require.Len(t, orders.orders, 1)
	assert.Equal(t, receipt.OrderID, orders.orders[0].ID)
	require.Len(t, events.published, 1)
	assert.Equal(t, receipt.OrderID, events.published[0].ID)

	// the cart is empty afterwards
	view, err := cart.View(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCheckoutTrimsCustomerFields(t *testing.T) {
	svc, cart, _, _ := newTestCheckout(product("p1", "Desk Lamp", "10.00", 5))

	_, err := cart.AddItem(context.Background(), testUser, "p1", 1)
	require.NoError(t, err)

	receipt, err := svc.Checkout(context.Background(), testUser, "  Ada  ", " ada@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", receipt.CustomerName)
	assert.Equal(t, "ada@example.com", receipt.CustomerEmail)
}

func TestCheckoutWithoutBroker(t *testing.T) {
	pr := newMemProductRepo()
	pr.put(product("p1", "Desk Lamp", "10.00", 5))
	cr := newMemCartRepo()
	or := newMemOrderRepo()
	cartSvc := NewCart(pr, cr, noopLocker{})
	svc := NewCheckout(pr, cr, or, noopLocker{}, nil)

	_, err := cartSvc.AddItem(context.Background(), testUser, "p1", 1)
	require.NoError(t, err)

	receipt, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.OrderID)
	assert.Len(t, or.orders, 1)
}

func TestCheckoutSnapshotsCurrentPrices(t *testing.T) {
	svc, cart, orders, _ := newTestCheckout(product("p1", "Smart Watch", "100", 30))

	_, err := cart.AddItem(context.Background(), testUser, "p1", 2)
	require.NoError(t, err)

	pr := svc.products.(*memProductRepo)
	pr.put(product("p1", "Smart Watch", "150", 30))

	receipt, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "300", receipt.Total.String())
	assert.Equal(t, "150", orders.orders[0].Items[0].Price.String())
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, cart, _, _ := newTestCheckout(product("p1", "Desk Lamp", "10.00", 50))

	var ids []string
	for i := 0; i < 3; i++ {
		_, err := cart.AddItem(context.Background(), testUser, "p1", 1)
		require.NoError(t, err)
		receipt, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
		require.NoError(t, err)
		ids = append(ids, receipt.OrderID)
	}

	orders, err := svc.ListOrders(context.Background(), testUser, 10)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, ids[2], orders[0].ID)
	assert.Equal(t, ids[0], orders[2].ID)

	limited, err := svc.ListOrders(context.Background(), testUser, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	// non-positive limit falls back to the default window
	defaulted, err := svc.ListOrders(context.Background(), testUser, 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 3)
}

func TestGetOrder(t *testing.T) {
	svc, cart, _, _ := newTestCheckout(product("p1", "Desk Lamp", "10.00", 5))

	_, err := cart.AddItem(context.Background(), testUser, "p1", 1)
	require.NoError(t, err)
	receipt, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), receipt.OrderID)
	require.NoError(t, err)
	assert.Equal(t, receipt.OrderID, order.ID)
	assert.Equal(t, entity.StatusCompleted, order.Status)

	_, err = svc.GetOrder(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Order not found")
}

func TestOrderNumberFormat(t *testing.T) {
	svc, cart, _, _ := newTestCheckout(product("p1", "Desk Lamp", "10.00", 50))

	_, err := cart.AddItem(context.Background(), testUser, "p1", 1)
	require.NoError(t, err)
	first, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
	require.NoError(t, err)

	_, err = cart.AddItem(context.Background(), testUser, "p1", 1)
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), testUser, "Ada", "ada@example.com")
	require.NoError(t, err)

	// ORD-YYYYMMDD-XXXXXXXX, and distinct even for back-to-back checkouts
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{8}$`, first.OrderNumber)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}
