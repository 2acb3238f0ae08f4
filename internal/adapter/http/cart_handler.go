package http

import (
	"context"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/http/middleware"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart *usecase.Cart
}

func NewCartHandler(cart *usecase.Cart) *CartHandler {
	return &CartHandler{cart: cart}
}

type addItemReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	view, err := h.cart.View(ctx, middleware.UserID(c))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, view)
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "Invalid request payload")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	view, err := h.cart.AddItem(ctx, middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		failFromErr(c, err)
		return
	}
	okMessage(c, "Item added to cart", view)
}

func (h *CartHandler) Update(c *gin.Context) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	view, err := h.cart.UpdateItemQuantity(ctx, middleware.UserID(c), c.Param("id"), req.Quantity)
	if err != nil {
		failFromErr(c, err)
		return
	}
	okMessage(c, "Cart updated", view)
}

func (h *CartHandler) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	view, err := h.cart.RemoveItem(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	okMessage(c, "Item removed from cart", view)
}

func (h *CartHandler) Clear(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	view, err := h.cart.Clear(ctx, middleware.UserID(c))
	if err != nil {
		failFromErr(c, err)
		return
	}
	okMessage(c, "Cart cleared", view)
}
