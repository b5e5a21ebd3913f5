package table

import "github.com/pscheid92/emojiboard/internal/domain"

// Column describes a sortable header cell.
type Column struct {
	Key       domain.SortKey   `json:"key"`
	Label     string           `json:"label"`
	Active    bool             `json:"active"`
	Direction domain.Direction `json:"direction,omitempty"`
	// Next is the view state a click on this header produces.
	Next domain.ViewState `json:"-"`
}

var columnOrder = []struct {
	key   domain.SortKey
	label string
}{
	{domain.SortRank, "Rank"},
	{domain.SortEmoji, "Emoji"},
	{domain.SortSentimentScore, "Sentiment"},
	{domain.SortCount, "Count"},
	{domain.SortPosRatio, "Positive"},
	{domain.SortNeuRatio, "Neutral"},
	{domain.SortNegRatio, "Negative"},
	{domain.SortConfidenceInterval, "Confidence"},
}

// Columns returns the table headers for view, in display order.
func Columns(view domain.ViewState) []Column {
	cols := make([]Column, len(columnOrder))
	for i, c := range columnOrder {
		col := Column{
			Key:   c.key,
			Label: c.label,
			Next:  view.ClickHeader(c.key),
		}
		if view.SortKey == c.key {
			col.Active = true
			col.Direction = view.Direction
		}
		cols[i] = col
	}
	return cols
}
