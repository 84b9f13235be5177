package simsearch

// Func scores how well a value matches a query. Higher is more similar.
type Func[V any] func(value V, query string) float64

// StatefulFunc scores a value against a query using the private per-item
// state slot created by the scorer's StateFunc. The function may mutate the
// state (for example to advance an incremental edit-distance matrix).
type StatefulFunc[V any] func(state any, value V, query string) float64

// StateFunc builds the per-item state for a stateful scorer. It is invoked
// exactly once per item, at registration time.
type StateFunc[V any] func(value V) any

// Scorer is one weighted similarity signal. Zero or more scorers are
// attached to an Engine; an item's combined score is the maximum of its
// weighted individual scores, so the single best signal wins and a strong
// match in one field is not diluted by weak matches elsewhere.
type Scorer[V any] struct {
	weight   float64
	fn       Func[V]
	stateful StatefulFunc[V]
	newState StateFunc[V]
}

// Score returns a stateless scorer with weight 1.0.
func Score[V any](fn Func[V]) Scorer[V] {
	return WeightedScore(1, fn)
}

// WeightedScore returns a stateless scorer with the given weight.
// The weight must be non-negative; AddScorer rejects it otherwise.
func WeightedScore[V any](weight float64, fn Func[V]) Scorer[V] {
	return Scorer[V]{weight: weight, fn: fn}
}

// StatefulScore returns a scorer with weight 1.0 whose function reads and
// writes a per-item state slot created by newState at registration time.
func StatefulScore[V any](newState StateFunc[V], fn StatefulFunc[V]) Scorer[V] {
	return WeightedStatefulScore(1, newState, fn)
}

// WeightedStatefulScore returns a stateful scorer with the given weight.
func WeightedStatefulScore[V any](weight float64, newState StateFunc[V], fn StatefulFunc[V]) Scorer[V] {
	return Scorer[V]{weight: weight, stateful: fn, newState: newState}
}

// Weight returns the scorer's weight.
func (s Scorer[V]) Weight() float64 { return s.weight }

func (s Scorer[V]) validate() error {
	if s.weight < 0 {
		return ErrNegativeWeight
	}
	if s.fn == nil && s.stateful == nil {
		return ErrNoFunction
	}
	if s.stateful != nil && s.newState == nil {
		return ErrNoStateConstructor
	}
	return nil
}

// score evaluates the scorer against one value. state is this scorer's slot
// in the item's state vector (nil for stateless scorers).
func (s Scorer[V]) score(state any, value V, query string) float64 {
	if s.stateful != nil {
		return s.weight * s.stateful(state, value, query)
	}
	return s.weight * s.fn(value, query)
}

// combined applies the max-of-weighted-scores rule across all scorers.
// The empty combination scores 0.0, which also floors every combined score
// at zero.
func combined[V any](scorers []Scorer[V], states []any, value V, query string) float64 {
	result := 0.0
	for i, s := range scorers {
		if v := s.score(states[i], value, query); v > result {
			result = v
		}
	}
	return result
}
