package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"factura/internal/handler"
	"factura/internal/middleware"
	"factura/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	invoiceH *handler.InvoiceHandler,
	shareH *handler.ShareHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Public share resolver - token is the only credential
	v1.GET("/shared/:token", shareH.Resolve)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)

	// Invoice routes. Static paths are registered before :id so gin routes
	// /invoices/defaults and /invoices/export correctly.
	invoices := protected.Group("/invoices")
	invoices.GET("/defaults", invoiceH.Defaults)
	invoices.GET("/export", invoiceH.Export)
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", invoiceH.Update)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.GET("/:id/pdf", invoiceH.DownloadPDF)
	invoices.POST("/:id/pdf/archive", invoiceH.ArchivePDF)
	invoices.POST("/:id/send", shareH.Send)
	invoices.POST("/:id/shares", shareH.Create)
	invoices.GET("/:id/shares", shareH.ListByInvoice)

	// Share management
	shares := protected.Group("/shares")
	shares.POST("/:id/revoke", shareH.Revoke)
	shares.DELETE("/:id", shareH.Delete)

	return r
}
