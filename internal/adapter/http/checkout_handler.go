package http

import (
	"context"
	"net/http"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/http/middleware"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout *usecase.Checkout
}

func NewCheckoutHandler(checkout *usecase.Checkout) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type checkoutReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	receipt, err := h.checkout.Checkout(ctx, middleware.UserID(c), req.Name, req.Email)
	if err != nil {
		failFromErr(c, err)
		return
	}

	// receipt sits beside the envelope fields, matching the frontend client
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"receipt": receipt,
	})
}

func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.checkout.ListOrders(ctx, middleware.UserID(c), 10)
	if err != nil {
		failFromErr(c, err)
		return
	}
	okList(c, len(orders), orders)
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	order, err := h.checkout.GetOrder(ctx, c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, order)
}
