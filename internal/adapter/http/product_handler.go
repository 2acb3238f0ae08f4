package http

import (
	"context"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog *usecase.Catalog
}

func NewProductHandler(catalog *usecase.Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	products, err := h.catalog.List(ctx)
	if err != nil {
		failFromErr(c, err)
		return
	}
	okList(c, len(products), products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	product, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, product)
}
