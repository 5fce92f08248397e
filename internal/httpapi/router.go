// Package storefrontserver wires the storefront HTTP surface: the cookie
// backed cart endpoints, the product catalog, and account/session handling,
// all grouped under a locale prefix.
package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopilens/storefront-api/internal/shared/i18n"
)

// ApiHandleFunctions groups the handler sets mounted by NewRouter.
type ApiHandleFunctions struct {
	CartAPI    CartAPI
	CatalogAPI CatalogAPI
	UserAPI    UserAPI
}

// NewRouter builds the storefront engine. Extra middleware (tracing, request
// logging) runs on every route after recovery.
func NewRouter(handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	lang := router.Group("/:lang", i18n.Middleware())

	cart := lang.Group("/cart/api/cart")
	cart.GET("", handleFunctions.CartAPI.GetCart)
	cart.POST("", handleFunctions.CartAPI.AddItem)
	cart.PUT("", handleFunctions.CartAPI.UpdateItem)
	cart.DELETE("", handleFunctions.CartAPI.RemoveItem)

	products := lang.Group("/api/products")
	products.GET("", handleFunctions.CatalogAPI.GetProducts)
	products.GET("/categories", handleFunctions.CatalogAPI.GetCategories)
	products.GET("/:productId", handleFunctions.CatalogAPI.GetProduct)

	auth := lang.Group("/api/auth")
	auth.POST("/register", handleFunctions.UserAPI.Register)
	auth.POST("/login", handleFunctions.UserAPI.Login)
	auth.POST("/logout", handleFunctions.UserAPI.Logout)

	lang.GET("/login", handleFunctions.UserAPI.GetLogin)
	lang.GET("/checkout", handleFunctions.UserAPI.RequireSession(), handleFunctions.UserAPI.GetCheckout)

	return router
}
