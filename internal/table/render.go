package table

import "github.com/pscheid92/emojiboard/internal/domain"

// Row is one formatted table row.
type Row struct {
	Rank               int    `json:"rank"`
	Emoji              string `json:"emoji"`
	Name               string `json:"name"`
	SentimentScore     string `json:"sentiment_score"`
	Count              string `json:"count"`
	PosRatio           string `json:"pos_ratio"`
	NeuRatio           string `json:"neu_ratio"`
	NegRatio           string `json:"neg_ratio"`
	ConfidenceInterval string `json:"confidence_interval"`
}

// Render formats records in order. Rank is the 1-based display position,
// recomputed on every render.
func Render(records []domain.SummaryRecord) []Row {
	f := newFormatter()
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Rank:               i + 1,
			Emoji:              r.Emoji,
			Name:               r.Name,
			SentimentScore:     f.score(r.SentimentScore),
			Count:              f.count(r.Count),
			PosRatio:           f.percent(r.PosRatio),
			NeuRatio:           f.percent(r.NeuRatio),
			NegRatio:           f.percent(r.NegRatio),
			ConfidenceInterval: f.score(r.ConfidenceInterval),
		}
	}
	return rows
}

// Project filters, sorts and renders records for the given view state.
func Project(records []domain.SummaryRecord, view domain.ViewState) []Row {
	return Render(Sort(Filter(records, view.Query), view.SortKey, view.Direction))
}
