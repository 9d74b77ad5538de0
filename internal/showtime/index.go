// Package showtime groups flat showtime lists into the nested
// date → cinema (→ location) structure the movie detail page renders.
package showtime

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Index is a string-keyed map that remembers the order in which keys were
// first inserted.
type Index[V any] struct {
	keys []string
	vals map[string]V
}

func newIndex[V any]() *Index[V] {
	return &Index[V]{vals: make(map[string]V)}
}

// Get returns the value stored under key.
func (ix *Index[V]) Get(key string) (V, bool) {
	v, ok := ix.vals[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (ix *Index[V]) Keys() []string {
	out := make([]string, len(ix.keys))
	copy(out, ix.keys)
	return out
}

// SortedKeys returns the keys in ascending lexicographic order.  For dates
// in YYYY-MM-DD form this is chronological order.
func (ix *Index[V]) SortedKeys() []string {
	out := ix.Keys()
	sort.Strings(out)
	return out
}

// Len reports the number of keys.
func (ix *Index[V]) Len() int { return len(ix.keys) }

// obtain returns the value for key, creating it with mk on first use.
func (ix *Index[V]) obtain(key string, mk func() V) V {
	if v, ok := ix.vals[key]; ok {
		return v
	}
	v := mk()
	ix.keys = append(ix.keys, key)
	ix.vals[key] = v
	return v
}

func (ix *Index[V]) set(key string, v V) {
	if _, ok := ix.vals[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.vals[key] = v
}

// MarshalJSON encodes the index as a JSON object whose members appear in
// first-seen order.
func (ix *Index[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range ix.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(ix.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
