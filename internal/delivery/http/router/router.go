// Package router registers all admin API routes.
package router

import (
	"givebox/internal/delivery/http/middleware"
	"givebox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router needs.
type RouterParams struct {
	fx.In

	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler  *handler.HealthHandler
	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	CharityHandler *handler.CharityHandler
	LoyaltyHandler *handler.LoyaltyHandler
	ContentHandler *handler.ContentHandler
}

type Router struct {
	params RouterParams
}

func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes mounts the public endpoints and the staff-only /admin group.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.params.HealthHandler.Check)
	e.POST("/admin/login", r.params.UserHandler.Login)

	admin := e.Group("/admin")
	admin.Use(r.params.AuthMiddleware.Authenticate)
	admin.Use(r.params.AuthMiddleware.RequireAdmin())

	r.registerUserRoutes(admin)
	r.registerCatalogRoutes(admin)
	r.registerOrderRoutes(admin)
	r.registerCharityRoutes(admin)
	r.registerLoyaltyRoutes(admin)
	r.registerContentRoutes(admin)
}

func (r *Router) registerUserRoutes(admin *echo.Group) {
	h := r.params.UserHandler

	admin.GET("/users", h.ListUsers)
	admin.GET("/users/:id", h.GetUser)
	admin.POST("/users", h.CreateUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)

	admin.GET("/users/:id/addresses", h.ListAddresses)
	admin.POST("/users/:id/addresses", h.CreateAddress)
	admin.PUT("/addresses/:id", h.UpdateAddress)
	admin.DELETE("/addresses/:id", h.DeleteAddress)
	admin.PATCH("/users/:id/addresses/:addressId/default", h.SetDefaultAddress)

	admin.GET("/otps", h.ListOTPs)
	admin.POST("/otps/issue", h.IssueOTP)
	admin.POST("/otps/verify", h.VerifyOTP)
}

func (r *Router) registerCatalogRoutes(admin *echo.Group) {
	h := r.params.CatalogHandler

	admin.GET("/products", h.ListProducts)
	admin.GET("/products/:id", h.GetProduct)
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.PATCH("/products/:id/price", h.SetProductPrice)
	admin.PATCH("/products/:id/status", h.SetProductStatus)

	admin.GET("/reviews", h.ListReviews)
	admin.GET("/reviews/:id", h.GetReview)
	admin.POST("/reviews", h.CreateReview)
	admin.PUT("/reviews/:id", h.UpdateReview)
	admin.DELETE("/reviews/:id", h.DeleteReview)
	admin.PATCH("/reviews/:id/display-status", h.SetReviewDisplayStatus)
}

func (r *Router) registerOrderRoutes(admin *echo.Group) {
	h := r.params.OrderHandler

	admin.GET("/orders", h.ListOrders)
	admin.GET("/orders/:id", h.GetOrder)
	admin.GET("/orders/code/:code", h.GetOrderByCode)
	admin.POST("/orders", h.CreateOrder)
	admin.PUT("/orders/:id", h.UpdateOrder)
	admin.DELETE("/orders/:id", h.DeleteOrder)
	admin.PATCH("/orders/:id/status", h.ChangeOrderStatus)
	admin.GET("/orders/:id/status-history", h.GetStatusHistory)
	admin.POST("/orders/:id/details", h.AddOrderDetail)
	admin.DELETE("/orders/:id/details/:detailId", h.RemoveOrderDetail)

	admin.GET("/carts", h.ListCarts)
	admin.GET("/users/:id/cart", h.ListUserCart)
	admin.POST("/carts", h.AddCartItem)
	admin.PATCH("/carts/:id/quantity", h.UpdateCartQuantity)
	admin.DELETE("/carts/:id", h.RemoveCartItem)
}

func (r *Router) registerCharityRoutes(admin *echo.Group) {
	h := r.params.CharityHandler

	admin.GET("/programs", h.ListPrograms)
	admin.GET("/programs/:id", h.GetProgram)
	admin.POST("/programs", h.CreateProgram)
	admin.PUT("/programs/:id", h.UpdateProgram)
	admin.DELETE("/programs/:id", h.DeleteProgram)

	admin.GET("/donations", h.ListDonations)
	admin.GET("/donations/:id", h.GetDonation)
	admin.POST("/donations", h.RecordDonation)
	admin.DELETE("/donations/:id", h.DeleteDonation)

	admin.GET("/disbursements", h.ListDisbursements)
	admin.GET("/disbursements/:id", h.GetDisbursement)
	admin.POST("/disbursements", h.CreateDisbursement)
	admin.PUT("/disbursements/:id", h.UpdateDisbursement)
	admin.DELETE("/disbursements/:id", h.DeleteDisbursement)
}

func (r *Router) registerLoyaltyRoutes(admin *echo.Group) {
	h := r.params.LoyaltyHandler

	admin.GET("/balances", h.ListBalances)
	admin.GET("/users/:id/balance", h.GetBalance)
	admin.POST("/points/grant", h.GrantPoints)
	admin.GET("/point-history", h.ListPointHistory)

	admin.GET("/vouchers", h.ListVouchers)
	admin.GET("/vouchers/:id", h.GetVoucher)
	admin.POST("/vouchers", h.CreateVoucher)
	admin.PUT("/vouchers/:id", h.UpdateVoucher)
	admin.DELETE("/vouchers/:id", h.DeleteVoucher)
	admin.POST("/vouchers/:id/redeem", h.RedeemVoucher)

	admin.GET("/redeemed-offers", h.ListRedeemedOffers)
	admin.GET("/redeemed-offers/:id", h.GetRedeemedOffer)
	admin.PATCH("/redeemed-offers/:id/usage-status", h.SetOfferUsageStatus)
	admin.DELETE("/redeemed-offers/:id", h.DeleteRedeemedOffer)
	admin.GET("/redeemed-offers/:id/qr", h.OfferQR)
}

func (r *Router) registerContentRoutes(admin *echo.Group) {
	h := r.params.ContentHandler

	admin.GET("/posts", h.ListPosts)
	admin.GET("/posts/:id", h.GetPost)
	admin.POST("/posts", h.CreatePost)
	admin.PUT("/posts/:id", h.UpdatePost)
	admin.DELETE("/posts/:id", h.DeletePost)
}
