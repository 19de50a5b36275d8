package chainmap

import "slices"

// Entry is one stored association. The key is fixed at insertion; the value
// may be changed in place through the pointer handed out by the map or a
// mutable Iterator.
type Entry[K comparable, V any] struct {
	key   K
	Value V
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Pair is a detached (key, value) copy, used for bulk construction and
// snapshots.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// bucket holds the entries routed to one slot, in insertion order.
// A bucket reachable from a table is never empty.
type bucket[K comparable, V any] struct {
	entries []*Entry[K, V]
}

func (b *bucket[K, V]) indexOf(key K) int {
	for i, e := range b.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

// erase removes the entry at i, keeping the order of the others.
func (b *bucket[K, V]) erase(i int) {
	b.entries = slices.Delete(b.entries, i, i+1)
}

func (b *bucket[K, V]) clone() *bucket[K, V] {
	c := &bucket[K, V]{entries: make([]*Entry[K, V], len(b.entries))}
	for i, e := range b.entries {
		c.entries[i] = &Entry[K, V]{key: e.key, Value: e.Value}
	}
	return c
}
