package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nfrund/wscatalog/internal/docs"
	"github.com/nfrund/wscatalog/internal/middleware"
	"github.com/nfrund/wscatalog/internal/pubsub"
	"github.com/nfrund/wscatalog/internal/rendering"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// Server serves read-only documentation of a registry.
type Server struct {
	E        *echo.Echo
	reg      *topicmgr.Registry
	examples []docs.Example
	gatherer prometheus.Gatherer
	metrics  *pubsub.Metrics
}

// New creates a new Server instance with its routes registered. gatherer is
// served at /metrics and metrics counts validation misses; either may be nil.
func New(reg *topicmgr.Registry, gatherer prometheus.Gatherer, metrics *pubsub.Metrics) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewNodeRenderer()
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	s := &Server{
		E:        e,
		reg:      reg,
		examples: docs.Examples(),
		gatherer: gatherer,
		metrics:  metrics,
	}
	s.RegisterRoutes()
	return s
}

// setupErrorHandling maps registry errors onto HTTP statuses and logs
// anything unexpected with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		var topicErr *topicmgr.TopicError
		if errors.As(err, &topicErr) {
			status := http.StatusBadRequest
			if errors.Is(err, topicmgr.ErrNotFound) {
				status = http.StatusNotFound
			}
			_ = c.JSON(status, topicErr)
			return
		}

		middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
			slog.String("stack_trace", string(debug.Stack())),
		)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"message": http.StatusText(http.StatusInternalServerError)})
	}
}
