package youtube

import "encoding/json"

// Result is the outcome of one item of a fan-out: either Value or Err is meaningful.
type Result[T any] struct {
	ID    string
	Value T
	Err   error
}

// OK reports whether the item succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// MarshalJSON renders {"id", "value"} on success and {"id", "error"} on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(struct {
			ID    string `json:"id"`
			Error string `json:"error"`
		}{r.ID, r.Err.Error()})
	}
	return json.Marshal(struct {
		ID    string `json:"id"`
		Value T      `json:"value"`
	}{r.ID, r.Value})
}

// Values returns the successful values in order, dropping failed slots.
func Values[T any](results []Result[T]) []T {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.OK() {
			values = append(values, r.Value)
		}
	}
	return values
}

// Failed counts the failed slots.
func Failed[T any](results []Result[T]) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
