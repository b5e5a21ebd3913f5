package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/emojiboard/internal/domain"
)

func (s *Server) registerAPIRoutes(rateLimiter echo.MiddlewareFunc) {
	s.echo.GET("/api/emoji", s.handleEmoji, rateLimiter)
	s.echo.GET("/api/chart", s.handleChartFigure, rateLimiter)
	s.echo.GET("/api/chart/stats", s.handleChartStats, rateLimiter)
}

// handleEmoji returns the table projection for the requested view. Before the
// dataset has loaded the row list is empty, not an error.
func (s *Server) handleEmoji(c echo.Context) error {
	view, err := parseView(c)
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, s.app.Table(view)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleChartFigure(c echo.Context) error {
	figure, ok := s.app.Chart()
	if !ok {
		return notLoaded(s.app.Status())
	}

	if err := c.JSON(http.StatusOK, figure); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleChartStats(c echo.Context) error {
	if status := s.app.Status(); status != domain.LoadLoaded {
		return notLoaded(status)
	}

	if err := c.JSON(http.StatusOK, s.app.ChartStats()); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
