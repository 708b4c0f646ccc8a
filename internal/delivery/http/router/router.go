// Package router contains routing setup for the HTTP delivery.
package router

import (
	"vault/internal/delivery/http/middleware"
	"vault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router wires, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler            *handler.UserHandler
	BusinessHandler        *handler.BusinessHandler
	ServiceHandler         *handler.ServiceHandler
	CouponHandler          *handler.CouponHandler
	MediaHandler           *handler.MediaHandler
	OperationalInfoHandler *handler.OperationalInfoHandler
	AiMetadataHandler      *handler.AiMetadataHandler
	JsonLDHandler          *handler.JsonLDHandler
	VisibilityHandler      *handler.VisibilityHandler
	AuthMiddleware         *middleware.AuthMiddleware
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

// RegisterRoutes sets up all the API routes for the application.
// Read endpoints are public; mutations require a bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.params.UserHandler.Register)
		userGroup.GET("/by-email/:email", r.params.UserHandler.GetByEmail, auth)
	}

	// Business profile routes
	businessGroup := e.Group("/business")
	{
		businessGroup.GET("/directory-view", r.params.BusinessHandler.GetDirectory)
		businessGroup.GET("", r.params.BusinessHandler.ListBusinesses)
		businessGroup.GET("/:id", r.params.BusinessHandler.GetBusiness)
		businessGroup.GET("/:id/qr", r.params.BusinessHandler.BusinessQR)
		businessGroup.GET("/by-owner/:ownerID", r.params.BusinessHandler.GetBusinessByOwner, auth)
		businessGroup.POST("", r.params.BusinessHandler.CreateBusiness, auth)
		businessGroup.PATCH("/:id", r.params.BusinessHandler.UpdateBusiness, auth)
	}

	// Service offering routes
	serviceGroup := e.Group("/services")
	{
		serviceGroup.GET("", r.params.ServiceHandler.ListServices)
		serviceGroup.GET("/:id", r.params.ServiceHandler.GetService)
		serviceGroup.POST("", r.params.ServiceHandler.CreateService, auth)
		serviceGroup.PATCH("/:id", r.params.ServiceHandler.UpdateService, auth)
		serviceGroup.DELETE("/:id", r.params.ServiceHandler.DeleteService, auth)
	}

	// Coupon routes
	couponGroup := e.Group("/coupons")
	{
		couponGroup.GET("", r.params.CouponHandler.ListCoupons)
		couponGroup.GET("/:id", r.params.CouponHandler.GetCoupon)
		couponGroup.POST("", r.params.CouponHandler.CreateCoupon, auth)
		couponGroup.PATCH("/:id", r.params.CouponHandler.UpdateCoupon, auth)
		couponGroup.DELETE("/:id", r.params.CouponHandler.DeleteCoupon, auth)
	}

	// Media asset routes
	mediaGroup := e.Group("/media")
	{
		mediaGroup.GET("", r.params.MediaHandler.ListMedia)
		mediaGroup.GET("/:id", r.params.MediaHandler.GetMedia)
		mediaGroup.POST("/upload", r.params.MediaHandler.UploadMedia, auth)
		mediaGroup.DELETE("/:id", r.params.MediaHandler.DeleteMedia, auth)
	}

	// Operational info routes, keyed by business
	opInfoGroup := e.Group("/operational-info")
	{
		opInfoGroup.GET("/by-business/:businessID", r.params.OperationalInfoHandler.GetOperationalInfo)
		opInfoGroup.POST("", r.params.OperationalInfoHandler.CreateOperationalInfo, auth)
		opInfoGroup.PATCH("/by-business/:businessID", r.params.OperationalInfoHandler.UpdateOperationalInfo, auth)
		opInfoGroup.DELETE("/by-business/:businessID", r.params.OperationalInfoHandler.DeleteOperationalInfo, auth)
	}

	// SEO metadata routes
	metadataGroup := e.Group("/ai-metadata")
	{
		metadataGroup.GET("", r.params.AiMetadataHandler.ListMetadata)
		metadataGroup.GET("/:id", r.params.AiMetadataHandler.GetMetadata)
		metadataGroup.POST("", r.params.AiMetadataHandler.CreateMetadata, auth)
		metadataGroup.POST("/generate", r.params.AiMetadataHandler.GenerateMetadata, auth)
		metadataGroup.DELETE("/:id", r.params.AiMetadataHandler.DeleteMetadata, auth)
	}

	// Structured data feed routes
	jsonLDGroup := e.Group("/jsonld")
	{
		jsonLDGroup.GET("", r.params.JsonLDHandler.ListFeeds)
		jsonLDGroup.GET("/:id", r.params.JsonLDHandler.GetFeed)
		jsonLDGroup.POST("/generate", r.params.JsonLDHandler.GenerateFeed, auth)
		jsonLDGroup.DELETE("/:id", r.params.JsonLDHandler.DeleteFeed, auth)
	}

	// Visibility audit routes
	visibilityGroup := e.Group("/visibility")
	{
		visibilityGroup.GET("/check", r.params.VisibilityHandler.ListCheckRequests)
		visibilityGroup.GET("/result", r.params.VisibilityHandler.ListResults)
		visibilityGroup.GET("/suggestion", r.params.VisibilityHandler.ListSuggestions)
		visibilityGroup.POST("/check", r.params.VisibilityHandler.CreateCheckRequest, auth)
		visibilityGroup.POST("/suggestion", r.params.VisibilityHandler.CreateSuggestion, auth)
		visibilityGroup.POST("/run", r.params.VisibilityHandler.RunAudit, auth)
		visibilityGroup.POST("/external", r.params.VisibilityHandler.AuditExternalSite, auth)
	}
}
