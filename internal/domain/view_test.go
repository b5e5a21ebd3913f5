package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultViewState(t *testing.T) {
	v := DefaultViewState()
	assert.Equal(t, SortCount, v.SortKey)
	assert.Equal(t, Descending, v.Direction)
	assert.Empty(t, v.Query)
}

func TestClickHeader_ActiveColumnTogglesDirection(t *testing.T) {
	v := DefaultViewState()

	v = v.ClickHeader(SortCount)
	assert.Equal(t, SortCount, v.SortKey)
	assert.Equal(t, Ascending, v.Direction)

	v = v.ClickHeader(SortCount)
	assert.Equal(t, SortCount, v.SortKey)
	assert.Equal(t, Descending, v.Direction)
}

func TestClickHeader_OtherColumnResetsDirection(t *testing.T) {
	tests := []struct {
		name    string
		from    ViewState
		click   SortKey
		wantDir Direction
	}{
		{"rank defaults ascending", ViewState{SortKey: SortCount, Direction: Descending}, SortRank, Ascending},
		{"name defaults descending", ViewState{SortKey: SortCount, Direction: Ascending}, SortName, Descending},
		{"score defaults descending", ViewState{SortKey: SortRank, Direction: Ascending}, SortSentimentScore, Descending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.ClickHeader(tt.click)
			assert.Equal(t, tt.click, got.SortKey)
			assert.Equal(t, tt.wantDir, got.Direction)
		})
	}
}

func TestClickHeader_KeepsQuery(t *testing.T) {
	v := DefaultViewState().WithQuery("grin")
	assert.Equal(t, "grin", v.ClickHeader(SortName).Query)
}

func TestWithQuery_TrimsAndLowercases(t *testing.T) {
	v := DefaultViewState().WithQuery("  Grinning FACE \t")
	assert.Equal(t, "grinning face", v.Query)
}

func TestParseViewState(t *testing.T) {
	t.Run("empty gives defaults", func(t *testing.T) {
		v, err := ParseViewState("", "", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultViewState(), v)
	})

	t.Run("key without direction uses key default", func(t *testing.T) {
		v, err := ParseViewState("rank", "", "")
		require.NoError(t, err)
		assert.Equal(t, Ascending, v.Direction)
	})

	t.Run("explicit direction wins", func(t *testing.T) {
		v, err := ParseViewState("name", "asc", " Cry ")
		require.NoError(t, err)
		assert.Equal(t, ViewState{SortKey: SortName, Direction: Ascending, Query: "cry"}, v)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseViewState("bogus", "", "")
		require.ErrorIs(t, err, ErrInvalidSortKey)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := ParseViewState("count", "sideways", "")
		require.ErrorIs(t, err, ErrInvalidDirection)
	})
}

func TestViewStateValues_RoundTrip(t *testing.T) {
	v := ViewState{SortKey: SortNegRatio, Direction: Ascending, Query: "face"}
	q := v.Values()

	got, err := ParseViewState(q.Get("sort"), q.Get("dir"), q.Get("q"))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestViewStateValues_OmitsEmptyQuery(t *testing.T) {
	q := DefaultViewState().Values()
	assert.False(t, q.Has("q"))
	assert.Equal(t, "count", q.Get("sort"))
	assert.Equal(t, "desc", q.Get("dir"))
}
