// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/checkout"
	"github.com/your-org/storefront-engine/internal/domain/session"
	"github.com/your-org/storefront-engine/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-engine/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-engine/internal/pkg/auth"
	"github.com/your-org/storefront-engine/internal/pkg/pdf"
)

// Services bundles everything the handlers depend on
type Services struct {
	Config       *config.Config
	Log          *logrus.Logger
	Catalog      catalog.Reader
	CatalogAdmin handlers.CatalogAdmin
	Sessions     *session.Manager
	Checkout     *checkout.Service
	PDF          *pdf.Service
	JWT          *auth.JWTManager
	Passwords    *auth.PasswordManager
}

// SetupCatalogRoutes sets up the browsing surface
func SetupCatalogRoutes(rg *gin.RouterGroup, svc *Services) {
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog, svc.Sessions)

	catalogGroup := rg.Group("/catalog")
	{
		catalogGroup.GET("/items", catalogHandler.ListItems)
		catalogGroup.GET("/items/:id", catalogHandler.GetItem)
		catalogGroup.GET("/categories", catalogHandler.ListCategories)
		catalogGroup.GET("/settings", catalogHandler.GetSiteSettings)
	}
}

// SetupCartRoutes sets up the session cart
func SetupCartRoutes(rg *gin.RouterGroup, svc *Services) {
	cartHandler := handlers.NewCartHandler(svc.Catalog, svc.Sessions)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:line_id", cartHandler.UpdateLine)
		cart.DELETE("/items/:line_id", cartHandler.RemoveLine)
		cart.DELETE("", cartHandler.ClearCart)
		cart.PUT("/default/:item_id", cartHandler.SetDefaultQuantity)
	}

	rg.DELETE("/session", cartHandler.EndSession)
}

// SetupCheckoutRoutes sets up checkout and free-form inquiries
func SetupCheckoutRoutes(rg *gin.RouterGroup, svc *Services) {
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout, svc.Sessions, svc.PDF, svc.Log)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("/payment-methods", checkoutHandler.GetPaymentMethods)
		checkoutGroup.POST("/inquiry", checkoutHandler.CreateInquiry)
		checkoutGroup.POST("/inquiry/pdf", checkoutHandler.CreateInquiryPDF)
	}

	rg.POST("/inquiries/general", checkoutHandler.GeneralInquiry)
}

// SetupAdminRoutes sets up admin login and catalog maintenance
func SetupAdminRoutes(rg *gin.RouterGroup, svc *Services) {
	adminHandler := handlers.NewAdminHandler(svc.CatalogAdmin, svc.JWT, svc.Passwords, svc.Log)

	admin := rg.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		protected := admin.Group("/catalog")
		protected.Use(middleware.AdminAuth(svc.JWT))
		{
			protected.PUT("/items/:id", adminHandler.UpsertItem)
			protected.PATCH("/items/:id/availability", adminHandler.SetAvailability)
		}
	}
}

// SetupRoutes wires every route group under rg. Shopper routes carry the
// session cookie; admin routes do not.
func SetupRoutes(rg *gin.RouterGroup, svc *Services) {
	shopper := rg.Group("")
	shopper.Use(middleware.Session(svc.Config.Session))

	SetupCatalogRoutes(shopper, svc)
	SetupCartRoutes(shopper, svc)
	SetupCheckoutRoutes(shopper, svc)

	SetupAdminRoutes(rg, svc)
}
