package simsearch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

func newStringEngine(t *testing.T, scorers ...Scorer[string]) *Engine[string] {
	t.Helper()

	e := New[string]()
	for _, s := range scorers {
		require.NoError(t, e.AddScorer(s))
	}
	return e
}

func TestRankAscendingOrder(t *testing.T) {
	e := newStringEngine(t, WeightedLev(identity))
	e.AddBatch([]string{"hell", "world", "welt"})

	results := e.Rank("hallo")
	require.Len(t, results, 3)

	// Ascending by score: the best match is the last element.
	assert.Equal(t, "hell", results[2].Value)
	assert.Greater(t, results[2].Score, results[1].Score)
	assert.GreaterOrEqual(t, results[1].Score, results[0].Score)
}

func TestRankOutputCoversAllItems(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "delta", ""}

	e := newStringEngine(t, Lev(identity))
	e.AddBatch(items)

	for _, query := range []string{"", "alp", "gamma", "zzz"} {
		results := e.Rank(query)
		require.Len(t, results, len(items), "query %q", query)

		got := make([]string, len(results))
		for i, r := range results {
			got[i] = r.Value
		}
		assert.ElementsMatch(t, items, got, "query %q", query)
	}
}

func TestRankEmptyEngine(t *testing.T) {
	e := newStringEngine(t, WeightedLev(identity))

	assert.Empty(t, e.Rank("anything"))
	assert.Empty(t, e.Search("anything"))
	assert.Empty(t, e.TopK("anything", 5))
	assert.Equal(t, 0, e.Len())
}

func TestRankWithoutScorers(t *testing.T) {
	e := New[string]()
	e.AddBatch([]string{"a", "b", "c"})

	results := e.Rank("query")
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Zero(t, r.Score)
	}
}

func TestCombinedScoreIsMaxOfWeighted(t *testing.T) {
	tests := []struct {
		name     string
		w1, f    float64
		w2, g    float64
		expected float64
	}{
		{"FirstWins", 1.0, 0.4, 0.5, 0.2, 0.4},
		{"SecondWins", 1.0, 0.4, 0.5, 0.9, 0.45},
		{"EqualWeights", 1.0, 0.3, 1.0, 0.7, 0.7},
		{"ZeroWeightMutes", 0.0, 1.0, 1.0, 0.6, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newStringEngine(t,
				WeightedScore(tt.w1, func(string, string) float64 { return tt.f }),
				WeightedScore(tt.w2, func(string, string) float64 { return tt.g }),
			)
			e.Add("item")

			results := e.Rank("query")
			require.Len(t, results, 1)
			assert.InDelta(t, tt.expected, results[0].Score, 1e-12)
		})
	}
}

func TestAddScorerValidation(t *testing.T) {
	e := New[string]()

	assert.ErrorIs(t, e.AddScorer(WeightedScore[string](-0.5, func(string, string) float64 { return 0 })), ErrNegativeWeight)
	assert.ErrorIs(t, e.AddScorer(WeightedScore[string](1, nil)), ErrNoFunction)
	assert.ErrorIs(t, e.AddScorer(StatefulScore[string](nil, func(any, string, string) float64 { return 0 })), ErrNoStateConstructor)

	// Rejected scorers must not join the pipeline.
	e.Add("x")
	assert.Zero(t, e.Rank("q")[0].Score)
}

func TestAddScorerRebuildsStates(t *testing.T) {
	// Items registered before the stateful scorer exists must still get a
	// state slot and score identically to items registered after it.
	before := New[string]()
	before.AddBatch([]string{"hell", "world", "welt"})
	require.NoError(t, before.AddScorer(IncrementalLev(identity)))

	after := New[string]()
	require.NoError(t, after.AddScorer(IncrementalLev(identity)))
	after.AddBatch([]string{"hell", "world", "welt"})

	for _, query := range []string{"h", "ha", "hallo"} {
		b, a := before.Rank(query), after.Rank(query)
		require.Len(t, b, len(a))
		for i := range b {
			assert.Equal(t, a[i].Value, b[i].Value)
			assert.InDelta(t, a[i].Score, b[i].Score, 1e-12)
		}
	}
}

func TestStatefulMatchesStateless(t *testing.T) {
	items := []string{"the winds of winter", "the great gatsby", "brave new world"}

	stateful := newStringEngine(t, IncrementalLev(identity))
	stateful.AddBatch(items)

	stateless := newStringEngine(t, WeightedLev(identity))
	stateless.AddBatch(items)

	// Prefix edits, shrink and wholesale replacement.
	for _, query := range []string{"w", "wi", "win", "winds", "win", "gatsby", ""} {
		a, b := stateful.Rank(query), stateless.Rank(query)
		require.Len(t, a, len(b), "query %q", query)
		for i := range a {
			assert.Equal(t, b[i].Value, a[i].Value, "query %q", query)
			assert.InDelta(t, b[i].Score, a[i].Score, 1e-12, "query %q", query)
		}
	}
}

func TestSearchMatchesRankOrder(t *testing.T) {
	e := newStringEngine(t, WeightedLev(identity))
	e.AddBatch([]string{"hell", "world", "welt"})

	results := e.Rank("hallo")
	found := e.Search("hallo")

	require.Len(t, found, len(results))
	for i := range results {
		assert.Equal(t, results[i].Value, found[i])
	}
}

func TestTopK(t *testing.T) {
	e := newStringEngine(t, WeightedLev(identity))
	e.AddBatch([]string{"hell", "help", "world", "welt", "shell"})

	full := e.Rank("hallo")
	top := e.TopK("hallo", 2)

	require.Len(t, top, 2)
	// Best first; equal to the reversed tail of the ascending full ranking.
	assert.InDelta(t, full[len(full)-1].Score, top[0].Score, 1e-12)
	assert.InDelta(t, full[len(full)-2].Score, top[1].Score, 1e-12)
	assert.GreaterOrEqual(t, top[0].Score, top[1].Score)

	assert.Nil(t, e.TopK("hallo", 0))
	assert.Nil(t, e.TopK("hallo", -3))
	assert.Len(t, e.TopK("hallo", 100), e.Len())
}

func TestRankContextMatchesSequential(t *testing.T) {
	items := make([]string, 200)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d-%s", i, string(rune('a'+i%26)))
	}

	sequential := newStringEngine(t, WeightedLev(identity))
	sequential.AddBatch(items)

	parallel := New[string](WithConcurrency(4))
	require.NoError(t, parallel.AddScorer(WeightedLev(identity)))
	parallel.AddBatch(items)

	want := map[string]float64{}
	for _, r := range sequential.Rank("item-42") {
		want[r.Value] = r.Score
	}

	got, err := parallel.RankContext(context.Background(), "item-42")
	require.NoError(t, err)
	require.Len(t, got, len(items))

	for _, r := range got {
		assert.InDelta(t, want[r.Value], r.Score, 1e-12, "item %q", r.Value)
	}

	// Sorted ascending.
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRankContextCancelled(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		e := New[string](WithConcurrency(concurrency))
		require.NoError(t, e.AddScorer(WeightedLev(identity)))
		e.AddBatch([]string{"a", "b", "c", "d"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.RankContext(ctx, "q")
		assert.ErrorIs(t, err, context.Canceled, "concurrency %d", concurrency)
	}
}

func TestSearchContext(t *testing.T) {
	e := New[string](WithConcurrency(2))
	require.NoError(t, e.AddScorer(WeightedLev(identity)))
	e.AddBatch([]string{"hell", "world", "welt"})

	found, err := e.SearchContext(context.Background(), "hallo")
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "hell", found[2])
}

func TestInsertionOrderPreserved(t *testing.T) {
	e := newStringEngine(t, WeightedLev(identity))
	e.AddBatch([]string{"zebra", "apple", "mango"})

	e.Rank("app")
	e.Rank("zeb")

	// The stored collection is never reordered; ranking sorts a copy.
	assert.Equal(t, []string{"zebra", "apple", "mango"}, e.items)
}

func TestMetricsCollection(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	e := New[string](WithMetrics(metrics))
	require.NoError(t, e.AddScorer(Lev(identity)))
	e.Add("one")
	e.AddBatch([]string{"two", "three"})
	e.Rank("query")
	e.TopK("query", 1)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.AddCount)
	assert.Equal(t, int64(3), stats.AddItems)
	assert.Equal(t, int64(2), stats.RankCount)
	assert.Equal(t, int64(4), stats.RankResults)
}
