package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/handler"    // handlers that translate HTTP to api calls
	"github.com/iliyamo/renttrack/internal/middleware" // bearer auth, roles, request ids, metrics
	"github.com/iliyamo/renttrack/internal/model"
)

// New returns an Echo instance with the common middleware and every route
// registered.
func New(h *handler.Handler, tokens middleware.TokenResolver, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestID(log))
	e.Use(middleware.AccessLog())
	e.Use(middleware.Metrics)

	RegisterRoutes(e)
	RegisterAPI(e.Group("/api"), h, tokens)
	return e
}

// RegisterRoutes registers routes that do not require authentication:
// the health check and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAPI registers the REST surface on g.  Login and forgot-password
// are open; everything else needs a bearer token.
func RegisterAPI(g *echo.Group, h *handler.Handler, tokens middleware.TokenResolver) {
	a := g.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/forgot-password", h.ForgotPassword)

	auth := g.Group("")
	auth.Use(middleware.BearerAuth(tokens))
	auth.GET("/auth/me", h.Me)

	auth.POST("/uploads", h.Upload)
	auth.POST("/uploads/reprocess", h.Reprocess)
	auth.GET("/uploads/:id", h.GetUpload)
	auth.DELETE("/uploads/:id", h.DeleteUpload)

	auth.GET("/tenants", h.ListTenants)
	auth.POST("/tenants", h.CreateTenant)
	auth.GET("/tenants/:id", h.GetTenant)
	auth.GET("/tenants/:id/payments", h.TenantLedger)

	auth.GET("/properties", h.ListProperties)
	auth.POST("/properties", h.CreateProperty)
	auth.GET("/properties/:id", h.GetProperty)
	auth.PATCH("/properties/:id", h.UpdateProperty)

	auth.GET("/payments", h.ListPayments)
	auth.POST("/payments/manual", h.ManualPayment)
	auth.POST("/payments/sweep-overdue", h.SweepOverdue)
	auth.POST("/payments/:id/mark-paid", h.MarkPaid)

	auth.GET("/dashboard/stats", h.Stats)
	auth.GET("/activity", h.Activity)

	auth.GET("/settings", h.GetSettings)
	auth.GET("/exports/tenants.csv", h.ExportTenants)
	auth.GET("/exports/payments.csv", h.ExportPayments)

	// Directory and preference changes are for administrators only.
	admin := middleware.RequireRole(model.SessionAdmin)
	auth.GET("/users", h.Users, admin)
	auth.PUT("/settings", h.UpdateSettings, admin)
}
