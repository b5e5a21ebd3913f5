package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/emojiboard/internal/domain"
	apperrors "github.com/pscheid92/emojiboard/internal/platform/errors"
)

func (s *Server) registerChartRoutes(rateLimiter echo.MiddlewareFunc) {
	s.echo.GET("/chart.png", s.handleChartPNG, rateLimiter)
}

func (s *Server) handleChartPNG(c echo.Context) error {
	data, err := s.app.ChartPNG()
	if errors.Is(err, domain.ErrDatasetNotLoaded) {
		return notLoaded(s.app.Status())
	}
	if err != nil {
		return apperrors.InternalError("failed to render chart", err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	if err := c.Blob(http.StatusOK, "image/png", data); err != nil {
		return fmt.Errorf("failed to send PNG response: %w", err)
	}
	return nil
}
