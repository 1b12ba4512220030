// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImageUploadPath is exempt from the global body limit; the handler enforces its own.
const ImageUploadPath = "/api/v1/images"

type RouterParams struct {
	fx.In

	AnalysisHandler   *handler.AnalysisHandler
	CredentialHandler *handler.CredentialHandler
	ProviderHandler   *handler.ProviderHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	analysisHandler   *handler.AnalysisHandler
	credentialHandler *handler.CredentialHandler
	providerHandler   *handler.ProviderHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		analysisHandler:   params.AnalysisHandler,
		credentialHandler: params.CredentialHandler,
		providerHandler:   params.ProviderHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimiter:       params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Routes open to anonymous callers; a bearer token, when sent, must be valid
	public := apiV1.Group("", r.authMiddleware.Identify)
	{
		public.GET("/providers", r.providerHandler.ListProviders)
		public.GET("/usage", r.analysisHandler.GetUsage)
		public.POST("/analyses", r.analysisHandler.Analyze, r.rateLimiter.Limit)
		public.POST("/images", r.analysisHandler.UploadImage, r.rateLimiter.Limit)
	}

	// Routes that require authentication
	private := apiV1.Group("", r.authMiddleware.Authenticate)
	{
		private.GET("/analyses", r.analysisHandler.ListAnalyses)
		private.PUT("/analyses/:id/coffee", r.analysisHandler.LinkCoffee)

		private.GET("/credentials", r.credentialHandler.ListCredentials)
		private.PUT("/credentials/:provider", r.credentialHandler.SaveCredential)
		private.DELETE("/credentials/:provider", r.credentialHandler.DeleteCredential)
		private.POST("/credentials/:provider/test", r.credentialHandler.TestCredential)
	}
}
