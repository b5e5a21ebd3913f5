package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/emojiboard/internal/adapter/metrics"
	"github.com/pscheid92/emojiboard/internal/chart"
	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/pscheid92/emojiboard/internal/table"
)

// TableView is one projection of the summary table for a request.
type TableView struct {
	View    domain.ViewState `json:"view"`
	Rows    []table.Row      `json:"rows"`
	Columns []table.Column   `json:"-"`
}

// Service loads the emoji dataset once and serves read-only projections of it.
type Service struct {
	loader  domain.DatasetLoader
	clock   clockwork.Clock
	metrics *metrics.Metrics

	loadOnce sync.Once

	mu        sync.RWMutex
	status    domain.LoadStatus
	loadErr   error
	dataset   *domain.Dataset
	figure    *chart.Figure
	stats     []chart.BoxStats
	buildDate time.Time

	pngOnce sync.Once
	png     []byte
	pngErr  error
}

// NewService creates the dashboard service. Nothing is read until Load is called.
func NewService(loader domain.DatasetLoader, clock clockwork.Clock, m *metrics.Metrics) *Service {
	return &Service{
		loader:  loader,
		clock:   clock,
		metrics: m,
		status:  domain.LoadPending,
	}
}

// Load reads both datasets. Only the first call does any work; later calls
// return the first result.
func (s *Service) Load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		s.load(ctx)
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Service) load(ctx context.Context) {
	start := s.clock.Now()
	ds, err := s.loader.Load(ctx)
	s.metrics.Dataset.LoadDuration.Observe(s.clock.Since(start).Seconds())

	if err != nil {
		s.metrics.Dataset.Loads.WithLabelValues("failure").Inc()
		slog.Error("Failed to load emoji data", "error", err)

		s.mu.Lock()
		s.status = domain.LoadFailed
		s.loadErr = fmt.Errorf("%w: %w", domain.ErrLoadFailed, err)
		s.mu.Unlock()
		return
	}

	s.metrics.Dataset.Loads.WithLabelValues("success").Inc()
	s.metrics.Dataset.Records.WithLabelValues("summary").Set(float64(len(ds.Summary)))
	s.metrics.Dataset.Records.WithLabelValues("expanded").Set(float64(len(ds.Expanded)))

	figure := chart.Build(ds.Summary, ds.Expanded)
	stats := chart.Stats(ds.Summary, ds.Expanded)
	s.metrics.Chart.Builds.WithLabelValues("plotly").Inc()

	s.mu.Lock()
	s.dataset = ds
	s.figure = &figure
	s.stats = stats
	s.buildDate = ds.LoadedAt
	s.status = domain.LoadLoaded
	s.mu.Unlock()

	slog.Info("Emoji data loaded", "summary", len(ds.Summary), "expanded", len(ds.Expanded))
}

// Status reports where the service is in its load lifecycle.
func (s *Service) Status() domain.LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the load error, or nil if the load has not failed.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// BuildDate is the moment the loader finished reading the dataset. Zero until loaded.
func (s *Service) BuildDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buildDate
}

// Table filters, sorts and renders the summary for view. Before the dataset has
// loaded the view has no rows.
func (s *Service) Table(view domain.ViewState) TableView {
	s.mu.RLock()
	ds := s.dataset
	s.mu.RUnlock()

	var rows []table.Row
	if ds != nil {
		rows = table.Project(ds.Summary, view)
	}
	if rows == nil {
		rows = []table.Row{}
	}

	s.metrics.Table.Renders.WithLabelValues(string(view.SortKey)).Inc()
	s.metrics.Table.Rows.Observe(float64(len(rows)))

	return TableView{
		View:    view,
		Rows:    rows,
		Columns: table.Columns(view),
	}
}

// Chart returns the Plotly figure built at load time.
func (s *Service) Chart() (*chart.Figure, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.figure, s.figure != nil
}

// ChartStats returns the per-category box statistics, or nil before load.
func (s *Service) ChartStats() []chart.BoxStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// ChartPNG renders the boxplot image on first use and caches it.
func (s *Service) ChartPNG() ([]byte, error) {
	if s.Status() != domain.LoadLoaded {
		return nil, domain.ErrDatasetNotLoaded
	}

	s.pngOnce.Do(func() {
		var buf bytes.Buffer
		if err := chart.RenderPNG(&buf, s.ChartStats()); err != nil {
			s.pngErr = err
			return
		}
		s.png = buf.Bytes()
		s.metrics.Chart.Builds.WithLabelValues("png").Inc()
	})
	return s.png, s.pngErr
}
