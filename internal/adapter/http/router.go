package http

import (
	"net/http"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/adapter/http/middleware"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(mockUserID string, ph *ProductHandler, ch *CartHandler, coh *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	l := logging.New("http")
	r.Use(middleware.Logging(l))
	r.Use(middleware.Identity(mockUserID))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Nexora E-Commerce API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"products": "/api/products",
				"cart":     "/api/cart",
				"checkout": "/api/checkout",
			},
		})
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "API is healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", ph.List)
		api.GET("/products/:id", ph.Get)

		api.GET("/cart", ch.Get)
		api.POST("/cart", ch.Add)
		api.PUT("/cart/:id", ch.Update)
		api.DELETE("/cart/:id", ch.Remove)
		api.DELETE("/cart", ch.Clear)

		api.POST("/checkout", coh.Checkout)
		api.GET("/checkout/orders", coh.ListOrders)
		api.GET("/checkout/orders/:id", coh.GetOrder)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "Route not found")
	})

	return r
}
