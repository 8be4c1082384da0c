package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RequestRecorder collects per-route request metrics and serves them.
type RequestRecorder interface {
	RecordHTTPRequest(method, path string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// HealthCheck reports whether the service can serve requests.
type HealthCheck func(ctx context.Context) error

// NewRouter builds the echo instance with every API route, the contract
// check, health, metrics and the Swagger UI.
func NewRouter(server *Server, contract *Contract, recorder RequestRecorder, health HealthCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(server.logger))
	if recorder != nil {
		e.Use(recordRequests(recorder))
		e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		if health != nil {
			if err := health(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	if contract != nil {
		registerSwagger(contract)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
		api.Use(contract.Middleware())
	}
	RegisterHandlers(api, server)

	return e
}

// RegisterHandlers adds the API routes to g.
func RegisterHandlers(g *echo.Group, s *Server) {
	g.POST("/drafts", s.StartDraft)
	g.GET("/drafts/:id", s.GetDraft)
	g.POST("/drafts/:id/consignor", s.SubmitConsignor)
	g.POST("/drafts/:id/consignee", s.SubmitConsignee)
	g.POST("/drafts/:id/shipment", s.SubmitShipment)
	g.POST("/drafts/:id/quotes", s.RequestQuotes)
	g.POST("/drafts/:id/back", s.GoBack)
	g.POST("/drafts/:id/shipping-option", s.SelectShippingOption)
	g.POST("/drafts/:id/sections/:section/reopen", s.ReopenSection)
	g.POST("/drafts/:id/items", s.AddItem)
	g.DELETE("/drafts/:id/items/:index", s.RemoveItem)
	g.POST("/drafts/:id/place", s.PlaceOrder)
	g.POST("/drafts/:id/reset", s.ResetDraft)

	g.GET("/countries", s.ListCountries)
	g.GET("/countries/:code/states", s.ListStates)

	g.GET("/kyc/customers", s.GetKycCustomers)
	g.GET("/kyc/customers/:id/documents", s.GetKycDocuments)
	g.POST("/kyc/customers/:id/documents/:docId/toggle", s.ToggleDocumentSelection)
	g.PUT("/kyc/customers/:id/documents/:docId/status", s.UpdateDocumentStatus)
	g.POST("/kyc/customers/:id/submit", s.SubmitKycDocuments)
	g.PUT("/kyc/customers/:id/csb-status", s.UpdateCsbStatus)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

func recordRequests(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			recorder.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}
