package domain

// SummaryRecord is the aggregated sentiment statistic for one emoji.
// Emoji is the unique key of the summary list.
type SummaryRecord struct {
	Emoji              string  `json:"emoji"`
	Name               string  `json:"name"`
	SentimentScore     float64 `json:"sentiment_score"`
	Count              int     `json:"count"`
	PosRatio           float64 `json:"pos_ratio"`
	NeuRatio           float64 `json:"neu_ratio"`
	NegRatio           float64 `json:"neg_ratio"`
	ConfidenceInterval float64 `json:"confidence_interval"`

	// Counts holds observations per score, keyed "1".."7". Optional; absent
	// in older files.
	Counts map[string]int `json:"counts,omitempty"`
}

// ExpandedSample is one scored observation for an emoji on the 1-7 scale.
type ExpandedSample struct {
	Emoji string `json:"emoji"`
	Score int    `json:"score"`
}

// Sentiment scale bounds.
const (
	MinScore = 1
	MaxScore = 7
)

// ScaleLabels names the ordinal sentiment buckets, index 0 is score 1.
var ScaleLabels = [MaxScore]string{
	"Very negative",
	"Negative",
	"Somewhat negative",
	"Neutral",
	"Somewhat positive",
	"Positive",
	"Very positive",
}
