package domain

import "errors"

var (
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	ErrLoadFailed       = errors.New("dataset load failed")
)
