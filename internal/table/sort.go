package table

import (
	"cmp"
	"slices"

	"github.com/pscheid92/emojiboard/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type compareFunc func(a, b *domain.SummaryRecord) int

func numeric[T cmp.Ordered](field func(*domain.SummaryRecord) T) compareFunc {
	return func(a, b *domain.SummaryRecord) int {
		return cmp.Compare(field(a), field(b))
	}
}

// comparators maps each sortable field to its ascending comparator. String
// fields use the collator, which is not safe for concurrent use.
func comparators(col *collate.Collator) map[domain.SortKey]compareFunc {
	text := func(field func(*domain.SummaryRecord) string) compareFunc {
		return func(a, b *domain.SummaryRecord) int {
			return col.CompareString(field(a), field(b))
		}
	}

	return map[domain.SortKey]compareFunc{
		domain.SortEmoji:              text(func(r *domain.SummaryRecord) string { return r.Emoji }),
		domain.SortName:               text(func(r *domain.SummaryRecord) string { return r.Name }),
		domain.SortSentimentScore:     numeric(func(r *domain.SummaryRecord) float64 { return r.SentimentScore }),
		domain.SortCount:              numeric(func(r *domain.SummaryRecord) int { return r.Count }),
		domain.SortPosRatio:           numeric(func(r *domain.SummaryRecord) float64 { return r.PosRatio }),
		domain.SortNeuRatio:           numeric(func(r *domain.SummaryRecord) float64 { return r.NeuRatio }),
		domain.SortNegRatio:           numeric(func(r *domain.SummaryRecord) float64 { return r.NegRatio }),
		domain.SortConfidenceInterval: numeric(func(r *domain.SummaryRecord) float64 { return r.ConfidenceInterval }),
	}
}

// Sort orders records by key and direction with a stable sort and returns a new
// slice. Sorting by rank keeps the current order and returns records as given.
func Sort(records []domain.SummaryRecord, key domain.SortKey, dir domain.Direction) []domain.SummaryRecord {
	if key == domain.SortRank {
		return records
	}

	compare, ok := comparators(collate.New(language.English))[key]
	if !ok {
		return records
	}

	sign := dir.Sign()
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b domain.SummaryRecord) int {
		return compare(&a, &b) * sign
	})
	return out
}
