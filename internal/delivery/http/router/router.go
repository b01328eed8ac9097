// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	ProfileHandler  *handler.ProfileHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
	VendorHandler   *handler.VendorHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Route
// groups carry the coarse role gate; the fine-grained rules (district
// scoping, ownership) live in the use cases.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/customer", r.params.AuthHandler.RegisterCustomer)
		authGroup.POST("/register/vendor", r.params.AuthHandler.RegisterVendor)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.POST("/password-reset/request", r.params.AuthHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.params.AuthHandler.ConfirmPasswordReset)
	}

	// Public browsing needs no session.
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.params.CatalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.params.CatalogHandler.GetProduct)
		catalogGroup.GET("/categories", r.params.CatalogHandler.ListCategories)
	}

	meGroup := e.Group("/me")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.params.ProfileHandler.GetProfile)
		meGroup.PATCH("/profile", r.params.ProfileHandler.UpdateProfile)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(r.params.AuthMiddleware.Authenticate)
	cartGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleCustomer))
	{
		cartGroup.GET("", r.params.CartHandler.List)
		cartGroup.POST("", r.params.CartHandler.Add)
		cartGroup.PUT("/:id", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/:id", r.params.CartHandler.Remove)
		cartGroup.POST("/clear", r.params.CartHandler.Clear)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.params.AuthMiddleware.Authenticate)
	wishlistGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleCustomer))
	{
		wishlistGroup.GET("", r.params.WishlistHandler.List)
		wishlistGroup.POST("", r.params.WishlistHandler.Add)
		wishlistGroup.DELETE("/:id", r.params.WishlistHandler.Remove)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.params.AuthMiddleware.Authenticate)
	orderGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleCustomer))
	{
		orderGroup.POST("", r.params.OrderHandler.Checkout)
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
	}

	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.params.AuthMiddleware.Authenticate)
	vendorGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/shop", r.params.VendorHandler.GetShop)
		vendorGroup.PATCH("/shop", r.params.VendorHandler.UpdateShop)
		vendorGroup.GET("/products", r.params.VendorHandler.ListProducts)
		vendorGroup.POST("/products", r.params.VendorHandler.CreateProduct)
		vendorGroup.PUT("/products/:id", r.params.VendorHandler.UpdateProduct)
		vendorGroup.DELETE("/products/:id", r.params.VendorHandler.DeleteProduct)
		vendorGroup.GET("/orders", r.params.VendorHandler.ListOrders)
		vendorGroup.PATCH("/orders/:id/status", r.params.VendorHandler.UpdateOrderStatus)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	r.registerAdminRoutes(adminGroup, true)

	// Regional admins get the same surface scoped to their district,
	// minus the global category taxonomy.
	regionalGroup := e.Group("/regional")
	regionalGroup.Use(r.params.AuthMiddleware.Authenticate)
	regionalGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleRegionalAdmin))
	r.registerAdminRoutes(regionalGroup, false)
}

func (r *router) registerAdminRoutes(g *echo.Group, withCategories bool) {
	g.GET("/users", r.params.AdminHandler.ListUsers)
	g.PATCH("/users/:id/role", r.params.AdminHandler.ChangeRole)
	g.GET("/vendors", r.params.AdminHandler.ListShops)
	g.POST("/vendors/:id/approve", r.params.AdminHandler.ApproveShop)
	g.POST("/vendors/:id/reject", r.params.AdminHandler.RejectShop)

	if withCategories {
		g.GET("/categories", r.params.AdminHandler.ListCategories)
		g.POST("/categories", r.params.AdminHandler.CreateCategory)
		g.PUT("/categories/:id", r.params.AdminHandler.UpdateCategory)
	}
}
