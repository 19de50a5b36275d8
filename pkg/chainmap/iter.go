package chainmap

import "iter"

// All returns an iterator over all key-value pairs, in the same order as
// Begin..End.
//
// The map must not be structurally modified during the loop; assigning to
// existing keys with Set is allowed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Range(yield)
	}
}

// Backward returns an iterator over all key-value pairs in reverse order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.table) - 1; i >= 0; i-- {
			b := m.table[i]
			if b == nil {
				continue
			}
			for j := len(b.entries) - 1; j >= 0; j-- {
				e := b.entries[j]
				if !yield(e.key, e.Value) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.Range(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values returns an iterator over the values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.Range(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// Range calls fn for each pair until fn returns false.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, b := range m.table {
		if b == nil {
			continue
		}
		for _, e := range b.entries {
			if !fn(e.key, e.Value) {
				return
			}
		}
	}
}

// Items returns a snapshot of all pairs.
func (m *Map[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, m.size)
	m.Range(func(key K, value V) bool {
		items = append(items, Pair[K, V]{Key: key, Value: value})
		return true
	})
	return items
}
