package httpserver

import (
	"html/template"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/emojiboard/internal/app"
	"github.com/pscheid92/emojiboard/internal/chart"
	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/pscheid92/emojiboard/internal/platform/config"
	"github.com/pscheid92/emojiboard/internal/table"
)

// --- Mock implementations ---

type mockDashboard struct {
	statusFn     func() domain.LoadStatus
	errFn        func() error
	buildDateFn  func() time.Time
	tableFn      func(view domain.ViewState) app.TableView
	chartFn      func() (*chart.Figure, bool)
	chartStatsFn func() []chart.BoxStats
	chartPNGFn   func() ([]byte, error)
}

func (m *mockDashboard) Status() domain.LoadStatus {
	if m.statusFn != nil {
		return m.statusFn()
	}
	return domain.LoadLoaded
}

func (m *mockDashboard) Err() error {
	if m.errFn != nil {
		return m.errFn()
	}
	return nil
}

func (m *mockDashboard) BuildDate() time.Time {
	if m.buildDateFn != nil {
		return m.buildDateFn()
	}
	return time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
}

func (m *mockDashboard) Table(view domain.ViewState) app.TableView {
	if m.tableFn != nil {
		return m.tableFn(view)
	}
	return app.TableView{View: view, Rows: []table.Row{}, Columns: table.Columns(view)}
}

func (m *mockDashboard) Chart() (*chart.Figure, bool) {
	if m.chartFn != nil {
		return m.chartFn()
	}
	return nil, false
}

func (m *mockDashboard) ChartStats() []chart.BoxStats {
	if m.chartStatsFn != nil {
		return m.chartStatsFn()
	}
	return nil
}

func (m *mockDashboard) ChartPNG() ([]byte, error) {
	if m.chartPNGFn != nil {
		return m.chartPNGFn()
	}
	return nil, domain.ErrDatasetNotLoaded
}

func pendingDashboard() *mockDashboard {
	return &mockDashboard{
		statusFn:    func() domain.LoadStatus { return domain.LoadPending },
		buildDateFn: func() time.Time { return time.Time{} },
	}
}

// --- Test helpers ---

func newTestServer(t *testing.T, app dashboard, opts ...func(*Server)) *Server {
	t.Helper()

	tmpl := template.Must(template.New("index.html").Funcs(templateFuncs).Parse(
		`Index {{.Status}} date={{.BuildDate}} {{template "table" .Table}}`))
	template.Must(tmpl.New("table.html").Parse(
		`{{define "table"}}{{range .Columns}}[{{.Label}} {{viewHref .Next}}]{{end}}{{range .Rows}}<{{.Rank}} {{.Emoji}} {{.Count}}>{{end}}{{end}}`))

	srv := &Server{
		echo:         echo.New(),
		config:       &config.Config{Port: "8080", RateLimitRPS: 1000, RateLimitBurst: 1000},
		app:          app,
		templates:    tmpl,
		healthChecks: []HealthCheck{datasetHealthCheck(app)},
		startTime:    time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = append(s.healthChecks, checks...)
	}
}

func withRateLimit(rps float64, burst int) func(*Server) {
	return func(s *Server) {
		s.config.RateLimitRPS = rps
		s.config.RateLimitBurst = burst
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}
