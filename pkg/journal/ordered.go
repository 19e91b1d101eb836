package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pair is a single key and value of an Ordered map.
type Pair[V any] struct {
	Key   string
	Value V
}

// Ordered is a string keyed map that remembers insertion order. It encodes
// as a JSON object with keys in that order, so "last entry" survives a
// round trip through the document.
type Ordered[V any] struct {
	pairs []Pair[V]
}

// Len reports the number of entries.
func (o *Ordered[V]) Len() int {
	return len(o.pairs)
}

func (o *Ordered[V]) index(key string) int {
	for i, p := range o.pairs {
		if p.Key == key {
			return i
		}
	}
	return -1
}

// Has reports whether key is present.
func (o *Ordered[V]) Has(key string) bool {
	return o.index(key) >= 0
}

// Get returns the value for key.
func (o *Ordered[V]) Get(key string) (V, bool) {
	if i := o.index(key); i >= 0 {
		return o.pairs[i].Value, true
	}
	var zero V
	return zero, false
}

// Set replaces the value of an existing key in place, or appends a new key.
func (o *Ordered[V]) Set(key string, value V) {
	if i := o.index(key); i >= 0 {
		o.pairs[i].Value = value
		return
	}
	o.pairs = append(o.pairs, Pair[V]{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (o *Ordered[V]) Delete(key string) bool {
	i := o.index(key)
	if i < 0 {
		return false
	}
	o.pairs = append(o.pairs[:i], o.pairs[i+1:]...)
	return true
}

// At returns the entry at position i; negative i counts from the end.
func (o *Ordered[V]) At(i int) (Pair[V], bool) {
	if i < 0 {
		i += len(o.pairs)
	}
	if i < 0 || i >= len(o.pairs) {
		return Pair[V]{}, false
	}
	return o.pairs[i], true
}

// Last returns the most recently inserted entry.
func (o *Ordered[V]) Last() (Pair[V], bool) {
	return o.At(-1)
}

// Pop removes and returns the most recently inserted entry.
func (o *Ordered[V]) Pop() (Pair[V], bool) {
	last, ok := o.Last()
	if ok {
		o.pairs = o.pairs[:len(o.pairs)-1]
	}
	return last, ok
}

// Keys returns the keys in insertion order.
func (o *Ordered[V]) Keys() []string {
	keys := make([]string, len(o.pairs))
	for i, p := range o.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the entries in insertion order.
func (o *Ordered[V]) Pairs() []Pair[V] {
	return append([]Pair[V](nil), o.pairs...)
}

func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range o.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Ordered[V]) UnmarshalJSON(b []byte) error {
	o.pairs = nil
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("journal: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("journal: expected object key, got %v", tok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("journal: decode %q: %w", key, err)
		}
		// Duplicate keys keep the position of their first appearance.
		o.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
