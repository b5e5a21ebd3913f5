package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/emojiboard/internal/adapter/metrics"
	"github.com/pscheid92/emojiboard/internal/app"
	"github.com/pscheid92/emojiboard/internal/chart"
	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/pscheid92/emojiboard/internal/platform/config"
	"github.com/pscheid92/emojiboard/web"
)

type dashboard interface {
	Status() domain.LoadStatus
	Err() error
	BuildDate() time.Time
	Table(view domain.ViewState) app.TableView
	Chart() (*chart.Figure, bool)
	ChartStats() []chart.BoxStats
	ChartPNG() ([]byte, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app dashboard

	templates *template.Template

	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app dashboard, registry *prometheus.Registry, httpMetrics *metrics.HTTPMetrics, healthChecks []HealthCheck) (*Server, error) {
	templates, err := template.New("").Funcs(templateFuncs).ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		templates:    templates,
		registry:     registry,
		httpMetrics:  httpMetrics,
		healthChecks: append([]HealthCheck{datasetHealthCheck(app)}, healthChecks...),
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}

var templateFuncs = template.FuncMap{
	// viewHref links to the page rendered for v.
	"viewHref": func(v domain.ViewState) template.URL {
		return template.URL("/?" + v.Values().Encode())
	},
	"sortIndicator": func(d domain.Direction) string {
		switch d {
		case domain.Ascending:
			return "▲"
		case domain.Descending:
			return "▼"
		}
		return ""
	},
}
