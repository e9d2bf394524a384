// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
)

// SetupRoutes wires every storefront and admin route. The Session middleware
// must already be installed on the engine; every handler reads its stores
// from the request context.
func SetupRoutes(router *gin.Engine, client *commerce.Client, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(client, cfg)
	authHandler := handlers.NewAuthHandler(cfg)
	cartHandler := handlers.NewCartHandler(cfg)
	orderHandler := handlers.NewOrderHandler(client, cfg)
	adminHandler := handlers.NewAdminHandler(client, cfg)
	pageHandler := handlers.NewPageHandler()

	// Public storefront
	router.GET("/", productHandler.Home)
	router.GET("/products", productHandler.List)
	router.GET("/products/:id", productHandler.Detail)

	// Auth screens
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.POST("/logout", authHandler.Logout)

	// Static informational pages
	for _, slug := range []string{"about", "careers", "shipping", "returns", "terms", "privacy", "help", "contact"} {
		router.GET("/"+slug, pageHandler.Static(slug))
	}

	// Navbar badge; answers 0 for signed-out visitors
	router.GET("/cart/count", cartHandler.Count)

	// Authenticated storefront
	protected := router.Group("")
	protected.Use(middleware.RequireUser())
	{
		protected.GET("/cart", cartHandler.ShowCart)
		protected.POST("/cart/add", cartHandler.AddToCart)
		protected.POST("/cart/items/:id", cartHandler.UpdateQuantity)
		protected.POST("/cart/items/:id/remove", cartHandler.RemoveFromCart)
		protected.POST("/cart/clear", cartHandler.ClearCart)

		protected.GET("/checkout", orderHandler.ShowCheckout)
		protected.POST("/checkout", orderHandler.Checkout)

		protected.GET("/orders", orderHandler.List)
		protected.GET("/orders/:id", orderHandler.Detail)

		protected.GET("/profile", authHandler.ShowProfile)
		protected.POST("/profile", authHandler.UpdateProfile)
	}

	// Admin console
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/products", adminHandler.Products)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.GET("/products/:id/edit", adminHandler.EditProduct)
		admin.POST("/products/:id", adminHandler.UpdateProduct)
		admin.POST("/products/:id/delete", adminHandler.DeleteProduct)
		admin.GET("/orders", adminHandler.Orders)
		admin.POST("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/users", adminHandler.Users)
		admin.POST("/users/:id/toggle", adminHandler.ToggleUserActive)
	}

	// Storefront 404
	router.NoRoute(pageHandler.NotFound)
}
