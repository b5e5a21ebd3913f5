package httpserver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/pscheid92/emojiboard/internal/platform/correlation"
	apperrors "github.com/pscheid92/emojiboard/internal/platform/errors"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.FromHeader(c.Request().Header.Get(correlation.Header))
		c.Response().Header().Set(correlation.Header, id)

		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			return HandleError(c, err)
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeValidation:
		slog.InfoContext(ctx, "Validation error", attrs...)
	case apperrors.TypeUnavailable:
		slog.WarnContext(ctx, "Dataset unavailable", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	default:
		slog.ErrorContext(ctx, "Unknown error type", attrs...)
	}
}

func HandleError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	structuredErr := apperrors.AsStructuredError(err)
	logError(c, structuredErr)
	if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
		return fmt.Errorf("failed to write error response: %w", err)
	}
	return nil
}

// parseView reads the sort, dir and q query parameters.
func parseView(c echo.Context) (domain.ViewState, error) {
	sortKey, dir, q := c.QueryParam("sort"), c.QueryParam("dir"), c.QueryParam("q")

	view, err := domain.ParseViewState(sortKey, dir, q)
	if err != nil {
		return domain.ViewState{}, apperrors.ValidationError("invalid view parameters", err).
			WithField("sort", sortKey).
			WithField("dir", dir)
	}
	return view, nil
}

// notLoaded maps the dashboard's load state to the error a read endpoint reports.
func notLoaded(status domain.LoadStatus) error {
	if status == domain.LoadFailed {
		return apperrors.UnavailableError("dataset failed to load", domain.ErrLoadFailed)
	}
	return apperrors.UnavailableError("dataset not loaded", domain.ErrDatasetNotLoaded)
}
