package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/pscheid92/emojiboard/internal/platform/version"
)

const readinessProbeTimeout = 5 * time.Second

var errDatasetLoading = errors.New("dataset is still loading")

// HealthCheck is a named health check function.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// datasetHealthCheck fails until the dataset has loaded, and for good after a failed load.
func datasetHealthCheck(app dashboard) HealthCheck {
	return HealthCheck{
		Name: "dataset",
		Check: func(_ context.Context) error {
			switch app.Status() {
			case domain.LoadLoaded:
				return nil
			case domain.LoadFailed:
				if err := app.Err(); err != nil {
					return err
				}
				return domain.ErrLoadFailed
			default:
				return errDatasetLoading
			}
		},
	}
}

func (s *Server) registerHealthRoutes() {
	s.echo.GET("/health/startup", s.handleStartup)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
}

// handleStartup succeeds once the load has finished, whatever its outcome. The
// page polls it while pending and picks up the build date from it.
func (s *Server) handleStartup(c echo.Context) error {
	status := s.app.Status()

	code := http.StatusOK
	if status == domain.LoadPending {
		code = http.StatusServiceUnavailable
	}

	response := map[string]string{"status": string(status)}
	if status == domain.LoadLoaded {
		response["build_date"] = s.app.BuildDate().Format(buildDateLayout)
	}

	if err := c.JSON(code, response); err != nil {
		return fmt.Errorf("failed to write startup response: %w", err)
	}
	return nil
}

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()

	response := map[string]any{
		"status": "ok",
		"uptime": uptime,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write liveness response: %w", err)
	}

	return nil
}

func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessProbeTimeout)
	defer cancel()

	return s.runHealthChecks(c, ctx)
}

func (s *Server) runHealthChecks(c echo.Context, ctx context.Context) error {
	for _, hc := range s.healthChecks {
		err := hc.Check(ctx)
		if err == nil {
			continue
		}

		status := "unhealthy"
		if errors.Is(err, errDatasetLoading) {
			status = "loading"
		}

		response := map[string]any{
			"status":       status,
			"failed_check": hc.Name,
			"error":        err.Error(),
		}
		if err := c.JSON(http.StatusServiceUnavailable, response); err != nil {
			return fmt.Errorf("failed to send JSON response: %w", err)
		}
		return nil
	}

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ready"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	if err := c.JSON(http.StatusOK, version.Get()); err != nil {
		return fmt.Errorf("failed to write version response: %w", err)
	}
	return nil
}
