package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/emojiboard/internal/app"
	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/pscheid92/emojiboard/internal/platform/version"
)

// buildDateLayout matches the en-US short date, e.g. 3/9/2024.
const buildDateLayout = "1/2/2006"

type pageData struct {
	BuildDate string
	Status    domain.LoadStatus
	Table     app.TableView
	Version   string
}

func (s *Server) registerPageRoutes(rateLimiter echo.MiddlewareFunc) {
	s.echo.GET("/", s.handleIndex, rateLimiter)
	s.echo.GET("/partials/table", s.handleTablePartial, rateLimiter)
}

func (s *Server) handleIndex(c echo.Context) error {
	view, err := parseView(c)
	if err != nil {
		return err
	}

	data := pageData{
		Status:  s.app.Status(),
		Table:   s.app.Table(view),
		Version: version.Get().String(),
	}
	if date := s.app.BuildDate(); !date.IsZero() {
		data.BuildDate = date.Format(buildDateLayout)
	}

	return s.renderTemplate(c, "index.html", data)
}

func (s *Server) handleTablePartial(c echo.Context) error {
	view, err := parseView(c)
	if err != nil {
		return err
	}

	return s.renderTemplate(c, "table", s.app.Table(view))
}
