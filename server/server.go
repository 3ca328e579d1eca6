// Package server hosts the word history page and its drill-down endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"

	"word-history-project/config"
	"word-history-project/history"
	"word-history-project/logger"
)

const shutdownTimeout = 10 * time.Second

// Server serves word history pages for one result set
type Server struct {
	cfg   *config.Config
	input history.Input
	views *viewStore
	echo  *echo.Echo
}

// New builds the server. The rate limiter's housekeeping stops with ctx.
func New(ctx context.Context, cfg *config.Config, input history.Input) (*Server, error) {
	views, err := newViewStore(cfg.ViewCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create view store: %w", err)
	}

	s := &Server{
		cfg:   cfg,
		input: input,
		views: views,
		echo:  echo.New(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(requestContext)
	s.echo.Use(otelecho.Middleware("word-history"))
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
			}
			logger.FromContext(c.Request().Context()).Log(c.Request().Context(), level, "http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"err", v.Error,
			)
			return nil
		},
	}))

	limiter := NewRateLimiter(ctx, rate.Limit(cfg.DrilldownRate), cfg.DrilldownBurst)

	s.echo.GET("/", s.handleIndex)
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	viewRoutes := s.echo.Group("/views/:id")
	viewRoutes.GET("/breakdown", s.handleBreakdown, limiter.Middleware())
	viewRoutes.DELETE("", s.handleDeleteView)

	return s, nil
}

// ServeHTTP lets the server be driven directly, e.g. by httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start serves until ctx is done, then shuts down and releases every view
func (s *Server) Start(ctx context.Context) error {
	addr := ":" + s.cfg.Port
	errCh := make(chan error, 1)

	go func() {
		logger.Logger.Info("http listen", "addr", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.views.Purge()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(shutdownCtx)
	s.views.Purge()
	return err
}

// requestContext carries the request id into the request context for logging
func requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
		}
		return next(c)
	}
}
