package chart

import (
	"slices"
	"strconv"

	"github.com/pscheid92/emojiboard/internal/domain"
)

const whiskerIQR = 1.5

// BoxStats summarises the score distribution of one emoji.
type BoxStats struct {
	Emoji        string    `json:"emoji"`
	Name         string    `json:"name"`
	N            int       `json:"n"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	Mean         float64   `json:"mean"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers,omitempty"`
	Buckets      []Bucket  `json:"buckets,omitempty"`
}

// Bucket is the upstream count for one score on the sentiment scale.
type Bucket struct {
	Score int     `json:"score"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// Stats computes box statistics per category, in CategoryOrder. Samples for
// emoji missing from the summary are ignored; categories without samples have N == 0.
func Stats(summary []domain.SummaryRecord, expanded []domain.ExpandedSample) []BoxStats {
	records := make(map[string]*domain.SummaryRecord, len(summary))
	for i := range summary {
		records[summary[i].Emoji] = &summary[i]
	}

	scores := make(map[string][]float64, len(summary))
	for _, s := range expanded {
		if _, ok := records[s.Emoji]; !ok {
			continue
		}
		scores[s.Emoji] = append(scores[s.Emoji], float64(s.Score))
	}

	order := CategoryOrder(summary)
	out := make([]BoxStats, len(order))
	for i, emoji := range order {
		out[i] = summarize(scores[emoji])
		out[i].Emoji = emoji
		out[i].Name = records[emoji].Name
		out[i].Buckets = buckets(records[emoji].Counts)
	}
	return out
}

// buckets expands the per-score counts into scale order. Nil when the record
// carries no counts.
func buckets(counts map[string]int) []Bucket {
	if len(counts) == 0 {
		return nil
	}

	out := make([]Bucket, 0, domain.MaxScore)
	total := 0
	for score := domain.MinScore; score <= domain.MaxScore; score++ {
		n := counts[strconv.Itoa(score)]
		total += n
		out = append(out, Bucket{Score: score, Label: domain.ScaleLabels[score-1], Count: n})
	}
	if total > 0 {
		for i := range out {
			out[i].Share = float64(out[i].Count) / float64(total)
		}
	}
	return out
}

func summarize(values []float64) BoxStats {
	if len(values) == 0 {
		return BoxStats{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	q1, median, q3 := InclusiveQuartiles(sorted)
	b := BoxStats{
		N:      len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Mean:   mean(sorted),
	}

	iqr := q3 - q1
	lowFence := q1 - whiskerIQR*iqr
	highFence := q3 + whiskerIQR*iqr
	b.LowerWhisker = q1
	b.UpperWhisker = q3
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		b.LowerWhisker = min(b.LowerWhisker, v)
		b.UpperWhisker = max(b.UpperWhisker, v)
	}
	return b
}

// InclusiveQuartiles returns Q1, median and Q3 of sorted, which must be in
// ascending order and non-empty. For odd lengths the median belongs to both halves.
func InclusiveQuartiles(sorted []float64) (q1, median, q3 float64) {
	n := len(sorted)
	mid := n / 2

	if n%2 == 1 {
		return medianOf(sorted[:mid+1]), sorted[mid], medianOf(sorted[mid:])
	}
	return medianOf(sorted[:mid]), medianOf(sorted), medianOf(sorted[mid:])
}

func medianOf(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
