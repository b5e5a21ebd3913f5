package domain

import (
	"context"
	"time"
)

// Dataset is the immutable pair of datasets loaded at startup.
type Dataset struct {
	Summary  []SummaryRecord
	Expanded []ExpandedSample
	LoadedAt time.Time
}

// DatasetLoader reads both datasets. Implementations must fail as a whole:
// a nil error means both lists were read and parsed.
type DatasetLoader interface {
	Load(ctx context.Context) (*Dataset, error)
}

// LoadStatus is the lifecycle state of the process-wide dataset.
type LoadStatus string

const (
	LoadPending LoadStatus = "pending"
	LoadLoaded  LoadStatus = "loaded"
	LoadFailed  LoadStatus = "failed"
)
