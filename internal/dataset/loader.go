package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/emojiboard/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Loader reads the summary and expanded datasets.
type Loader struct {
	summary  Source
	expanded Source
	clock    clockwork.Clock
}

func NewLoader(summary, expanded Source, clock clockwork.Clock) *Loader {
	return &Loader{
		summary:  summary,
		expanded: expanded,
		clock:    clock,
	}
}

// Load issues both reads together and waits for both. There is no partial
// result: any open, read or parse error fails the load and cancels the other read.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	var (
		summary  []domain.SummaryRecord
		expanded []domain.ExpandedSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := decodeList[domain.SummaryRecord](gctx, l.summary)
		if err != nil {
			return fmt.Errorf("summary dataset: %w", err)
		}
		summary = records
		return nil
	})
	g.Go(func() error {
		samples, err := decodeList[domain.ExpandedSample](gctx, l.expanded)
		if err != nil {
			return fmt.Errorf("expanded dataset: %w", err)
		}
		expanded = samples
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Datasets read",
		"summary_source", l.summary.String(), "summary_records", len(summary),
		"expanded_source", l.expanded.String(), "expanded_records", len(expanded))

	return &domain.Dataset{
		Summary:  summary,
		Expanded: expanded,
		LoadedAt: l.clock.Now(),
	}, nil
}

func decodeList[T any](ctx context.Context, src Source) ([]T, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var out []T
	if err := json.NewDecoder(rc).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src.String(), err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
