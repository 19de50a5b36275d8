package chainmap

import "iter"

// FromPairs builds a map from pairs. Later pairs overwrite earlier pairs with
// the same key.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) (*Map[K, V], error) {
	m, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m, nil
}

// Collect builds a map from seq. Later pairs overwrite earlier pairs with the
// same key.
func Collect[K comparable, V any](seq iter.Seq2[K, V], opts ...Option) (*Map[K, V], error) {
	m, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	for k, v := range seq {
		m.Set(k, v)
	}
	return m, nil
}

// Clone returns an independent copy with the same capacity and contents.
// Values are copied with assignment, so pointer values are shared.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		table:  make([]*bucket[K, V], len(m.table)),
		size:   m.size,
		hasher: m.hasher,
	}
	for i, b := range m.table {
		if b != nil {
			c.table[i] = b.clone()
		}
	}
	return c
}

// CopyFrom replaces the contents and capacity of m with a copy of src.
func (m *Map[K, V]) CopyFrom(src *Map[K, V]) {
	if src == m {
		return
	}
	*m = *src.Clone()
}

// Move transfers the table and entries of m to a new map and returns it.
// m is left with capacity 0; it reads as empty and allocates a fresh
// DefaultCapacity table on its next insertion.
func (m *Map[K, V]) Move() *Map[K, V] {
	dst := &Map[K, V]{}
	dst.MoveFrom(m)
	return dst
}

// MoveFrom transfers the table and entries of src into m, discarding the
// previous contents of m. src is left with capacity 0.
func (m *Map[K, V]) MoveFrom(src *Map[K, V]) {
	if src == m {
		return
	}
	m.table, m.size, m.hasher = src.table, src.size, src.hasher
	src.table, src.size = nil, 0
}

// Equal reports whether a and b hold the same keys mapped to equal values.
// Capacity and slot layout are ignored.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares values with eq.
// A nil map is equal to any empty map.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a == nil || b == nil {
		return (a == nil || a.IsEmpty()) && (b == nil || b.IsEmpty())
	}
	if a.Len() != b.Len() {
		return false
	}
	for k, v1 := range a.All() {
		slot, offset, ok := b.locate(k)
		if !ok {
			return false
		}
		if !eq(v1, b.table[slot].entries[offset].Value) {
			return false
		}
	}
	return true
}
