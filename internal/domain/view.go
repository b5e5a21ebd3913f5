package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// SortKey identifies a sortable table column by SummaryRecord field name.
type SortKey string

const (
	SortRank               SortKey = "rank"
	SortEmoji              SortKey = "emoji"
	SortName               SortKey = "name"
	SortSentimentScore     SortKey = "sentiment_score"
	SortCount              SortKey = "count"
	SortPosRatio           SortKey = "pos_ratio"
	SortNeuRatio           SortKey = "neu_ratio"
	SortNegRatio           SortKey = "neg_ratio"
	SortConfidenceInterval SortKey = "confidence_interval"
)

var sortKeys = map[SortKey]struct{}{
	SortRank:               {},
	SortEmoji:              {},
	SortName:               {},
	SortSentimentScore:     {},
	SortCount:              {},
	SortPosRatio:           {},
	SortNeuRatio:           {},
	SortNegRatio:           {},
	SortConfidenceInterval: {},
}

// ParseSortKey validates s as a sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if _, ok := sortKeys[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return k, nil
}

// DefaultDirection is the direction a column starts with when it becomes active.
func (k SortKey) DefaultDirection() Direction {
	if k == SortRank {
		return Ascending
	}
	return Descending
}

// Direction is the table sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection validates s as a direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Sign is the comparator multiplier: +1 ascending, -1 descending.
func (d Direction) Sign() int {
	if d == Ascending {
		return 1
	}
	return -1
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ViewState fully determines the rendered table projection.
// It is a value: transitions return a new state.
type ViewState struct {
	SortKey   SortKey   `json:"sort"`
	Direction Direction `json:"dir"`
	Query     string    `json:"q"`
}

// DefaultViewState sorts by count, most observed first, unfiltered.
func DefaultViewState() ViewState {
	return ViewState{
		SortKey:   SortCount,
		Direction: Descending,
	}
}

// ClickHeader applies a column header click. Clicking the active column toggles
// the direction; any other column becomes active with its default direction.
func (v ViewState) ClickHeader(key SortKey) ViewState {
	if v.SortKey == key {
		v.Direction = v.Direction.Toggle()
		return v
	}
	v.SortKey = key
	v.Direction = key.DefaultDirection()
	return v
}

// WithQuery sets the filter query from raw search input.
func (v ViewState) WithQuery(raw string) ViewState {
	v.Query = NormalizeQuery(raw)
	return v
}

// NormalizeQuery trims and lowercases search input.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseViewState builds a state from request parameters. Empty parameters
// fall back to the defaults.
func ParseViewState(sortKey, direction, query string) (ViewState, error) {
	v := DefaultViewState()

	if sortKey != "" {
		k, err := ParseSortKey(sortKey)
		if err != nil {
			return ViewState{}, err
		}
		v.SortKey = k
		v.Direction = k.DefaultDirection()
	}

	if direction != "" {
		d, err := ParseDirection(direction)
		if err != nil {
			return ViewState{}, err
		}
		v.Direction = d
	}

	return v.WithQuery(query), nil
}

// Values encodes the state as URL query parameters.
func (v ViewState) Values() url.Values {
	q := url.Values{}
	q.Set("sort", string(v.SortKey))
	q.Set("dir", string(v.Direction))
	if v.Query != "" {
		q.Set("q", v.Query)
	}
	return q
}
