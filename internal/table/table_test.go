package table

import (
	"testing"

	"github.com/pscheid92/emojiboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	grinning = domain.SummaryRecord{
		Emoji: "😀", Name: "grinning face", Count: 500, SentimentScore: 6.2,
		PosRatio: 0.8, NeuRatio: 0.15, NegRatio: 0.05, ConfidenceInterval: 0.0425,
	}
	crying = domain.SummaryRecord{
		Emoji: "😢", Name: "crying face", Count: 900, SentimentScore: 2.1,
		PosRatio: 0.1, NeuRatio: 0.2, NegRatio: 0.7, ConfidenceInterval: 0.031,
	}
	heart = domain.SummaryRecord{
		Emoji: "❤️", Name: "red heart", Count: 12345, SentimentScore: 6.8,
		PosRatio: 0.9, NeuRatio: 0.08, NegRatio: 0.02, ConfidenceInterval: 0.01,
	}
)

func emojis(records []domain.SummaryRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Emoji
	}
	return out
}

// --- Filter ---

func TestFilter_EmptyQueryReturnsCopy(t *testing.T) {
	in := []domain.SummaryRecord{grinning, crying}
	out := Filter(in, "")

	assert.Equal(t, in, out)
	out[0].Name = "changed"
	assert.Equal(t, "grinning face", in[0].Name)
}

func TestFilter_ByName(t *testing.T) {
	out := Filter([]domain.SummaryRecord{grinning, crying, heart}, "grin")
	assert.Equal(t, []string{"😀"}, emojis(out))
}

func TestFilter_ByGlyph(t *testing.T) {
	out := Filter([]domain.SummaryRecord{grinning, crying, heart}, "😢")
	assert.Equal(t, []string{"😢"}, emojis(out))
}

func TestFilter_NameIsCaseInsensitive(t *testing.T) {
	upper := grinning
	upper.Name = "Grinning Face"
	out := Filter([]domain.SummaryRecord{upper, crying}, "grinning")
	assert.Len(t, out, 1)
}

func TestFilter_IgnoresWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"query without spaces", "redheart", []string{"❤️"}},
		{"query with extra spaces", "red  heart", []string{"❤️"}},
		{"shared word", "face", []string{"😀", "😢"}},
		{"no match", "rocket", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Filter([]domain.SummaryRecord{grinning, crying, heart}, tt.query)
			assert.Equal(t, tt.want, emojis(out))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := []domain.SummaryRecord{grinning, crying, heart}
	for _, q := range []string{"", "face", "grin", "r", "😀", "zzz"} {
		once := Filter(all, q)
		twice := Filter(once, q)
		assert.Equal(t, once, twice, "query %q", q)
	}
}

// --- Sort ---

func TestSort_DefaultCountDescending(t *testing.T) {
	out := Sort([]domain.SummaryRecord{grinning, crying, heart}, domain.SortCount, domain.Descending)
	assert.Equal(t, []string{"❤️", "😢", "😀"}, emojis(out))
}

func TestSort_NumericAscending(t *testing.T) {
	out := Sort([]domain.SummaryRecord{grinning, crying, heart}, domain.SortSentimentScore, domain.Ascending)
	assert.Equal(t, []string{"😢", "😀", "❤️"}, emojis(out))
}

func TestSort_RankIsPassThrough(t *testing.T) {
	in := []domain.SummaryRecord{grinning, heart, crying}
	for _, dir := range []domain.Direction{domain.Ascending, domain.Descending} {
		out := Sort(in, domain.SortRank, dir)
		assert.Equal(t, emojis(in), emojis(out))
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := []domain.SummaryRecord{grinning, crying, heart}
	_ = Sort(in, domain.SortCount, domain.Descending)
	assert.Equal(t, []string{"😀", "😢", "❤️"}, emojis(in))
}

func TestSort_ReversingDirectionReversesDistinctKeys(t *testing.T) {
	in := []domain.SummaryRecord{grinning, crying, heart}
	keys := []domain.SortKey{
		domain.SortName, domain.SortSentimentScore, domain.SortCount, domain.SortPosRatio,
		domain.SortNeuRatio, domain.SortNegRatio, domain.SortConfidenceInterval,
	}

	for _, key := range keys {
		t.Run(string(key), func(t *testing.T) {
			asc := emojis(Sort(in, key, domain.Ascending))
			desc := emojis(Sort(in, key, domain.Descending))
			require.Len(t, desc, len(asc))
			for i := range asc {
				assert.Equal(t, asc[i], desc[len(desc)-1-i])
			}
		})
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	a := domain.SummaryRecord{Emoji: "a", Name: "alpha", Count: 10}
	b := domain.SummaryRecord{Emoji: "b", Name: "beta", Count: 10}
	c := domain.SummaryRecord{Emoji: "c", Name: "gamma", Count: 10}
	d := domain.SummaryRecord{Emoji: "d", Name: "delta", Count: 20}

	out := Sort([]domain.SummaryRecord{b, a, d, c}, domain.SortCount, domain.Descending)
	assert.Equal(t, []string{"d", "b", "a", "c"}, emojis(out))

	out = Sort([]domain.SummaryRecord{b, a, d, c}, domain.SortCount, domain.Ascending)
	assert.Equal(t, []string{"b", "a", "c", "d"}, emojis(out))
}

func TestSort_NamesUseLocaleOrder(t *testing.T) {
	in := []domain.SummaryRecord{
		{Emoji: "c", Name: "cherry"},
		{Emoji: "B", Name: "Banana"},
		{Emoji: "a", Name: "apple"},
	}

	out := Sort(in, domain.SortName, domain.Ascending)
	assert.Equal(t, []string{"a", "B", "c"}, emojis(out))
}

// --- Render ---

func TestRender_Formats(t *testing.T) {
	rows := Render([]domain.SummaryRecord{heart})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.Rank)
	assert.Equal(t, "❤️", row.Emoji)
	assert.Equal(t, "red heart", row.Name)
	assert.Equal(t, "6.800", row.SentimentScore)
	assert.Equal(t, "12,345", row.Count)
	assert.Equal(t, "90.0%", row.PosRatio)
	assert.Equal(t, "8.0%", row.NeuRatio)
	assert.Equal(t, "2.0%", row.NegRatio)
	assert.Equal(t, "0.010", row.ConfidenceInterval)
}

func TestRender_PercentHasOneDecimal(t *testing.T) {
	r := grinning
	r.PosRatio = 0.4567
	r.NeuRatio = 0
	r.NegRatio = 1
	row := Render([]domain.SummaryRecord{r})[0]

	assert.Equal(t, "45.7%", row.PosRatio)
	assert.Equal(t, "0.0%", row.NeuRatio)
	assert.Equal(t, "100.0%", row.NegRatio)
}

func TestRender_ScoreHasThreeDecimals(t *testing.T) {
	r := grinning
	r.SentimentScore = 4
	r.ConfidenceInterval = 0.12345
	row := Render([]domain.SummaryRecord{r})[0]

	assert.Equal(t, "4.000", row.SentimentScore)
	assert.Equal(t, "0.123", row.ConfidenceInterval)
}

func TestRender_RankIsDisplayPosition(t *testing.T) {
	rows := Render([]domain.SummaryRecord{crying, grinning, heart})
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil))
}

// --- Project ---

func TestProject_DefaultState(t *testing.T) {
	rows := Project([]domain.SummaryRecord{grinning, crying}, domain.DefaultViewState())

	require.Len(t, rows, 2)
	assert.Equal(t, "😢", rows[0].Emoji)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "900", rows[0].Count)
	assert.Equal(t, "😀", rows[1].Emoji)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, "500", rows[1].Count)
}

func TestProject_FilterRegardlessOfSortKey(t *testing.T) {
	for _, key := range []domain.SortKey{domain.SortRank, domain.SortCount, domain.SortName, domain.SortNegRatio} {
		view := domain.DefaultViewState().ClickHeader(key).WithQuery("grin")
		rows := Project([]domain.SummaryRecord{grinning, crying, heart}, view)

		require.Len(t, rows, 1, "sort key %s", key)
		assert.Equal(t, "😀", rows[0].Emoji)
		assert.Equal(t, 1, rows[0].Rank)
	}
}

// --- Columns ---

func TestColumns_MarksActiveAndNextState(t *testing.T) {
	view := domain.DefaultViewState()
	cols := Columns(view)

	require.Len(t, cols, 8)
	assert.Equal(t, domain.SortRank, cols[0].Key)

	for _, col := range cols {
		if col.Key == domain.SortCount {
			assert.True(t, col.Active)
			assert.Equal(t, domain.Descending, col.Direction)
			assert.Equal(t, domain.ViewState{SortKey: domain.SortCount, Direction: domain.Ascending}, col.Next)
			continue
		}
		assert.False(t, col.Active)
		assert.Equal(t, col.Key, col.Next.SortKey)
		assert.Equal(t, col.Key.DefaultDirection(), col.Next.Direction)
	}
}
