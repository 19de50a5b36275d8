package chainmap

import "fmt"

// DefaultCapacity is the slot count used when no capacity is given.
const DefaultCapacity = 1024

// Map is a fixed-capacity hash map with separate chaining.
//
// The zero value is an empty map with no table; the first insertion
// allocates DefaultCapacity slots. A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table  []*bucket[K, V]
	size   int
	hasher Hasher[K]
}

type options struct {
	capacity int
}

// Option configures a Map at construction.
type Option func(*options)

// WithCapacity sets the number of slots. It must be at least 1.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New creates an empty map.
// A capacity below 1 is rejected with ErrInvalidArgument.
func New[K comparable, V any](opts ...Option) (*Map[K, V], error) {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity < 1 {
		return nil, ErrInvalidArgument.WithDetails(fmt.Sprintf("capacity must be at least 1, got %d", o.capacity))
	}

	return &Map[K, V]{
		table:  make([]*bucket[K, V], o.capacity),
		hasher: NewHasher[K](),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[K comparable, V any](opts ...Option) *Map[K, V] {
	m, err := New[K, V](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// init prepares a zero-value or moved-from map for insertion.
func (m *Map[K, V]) init() {
	if m.hasher == nil {
		m.hasher = NewHasher[K]()
	}
	if len(m.table) == 0 {
		m.table = make([]*bucket[K, V], DefaultCapacity)
	}
}

// route returns the slot index for key. The table must be allocated.
func (m *Map[K, V]) route(key K) int {
	if m.hasher == nil {
		m.hasher = NewHasher[K]()
	}
	return int(m.hasher.Hash(key) % uint64(len(m.table)))
}

// ensureBucket returns the bucket at slot i, creating it if the slot is empty.
func (m *Map[K, V]) ensureBucket(i int) *bucket[K, V] {
	b := m.table[i]
	if b == nil {
		b = &bucket[K, V]{}
		m.table[i] = b
	}
	return b
}

// releaseIfEmpty empties slot i once its bucket has no entries left.
func (m *Map[K, V]) releaseIfEmpty(i int) {
	if b := m.table[i]; b != nil && len(b.entries) == 0 {
		m.table[i] = nil
	}
}

// locate returns the slot and offset of key. ok is false on a miss.
func (m *Map[K, V]) locate(key K) (slot, offset int, ok bool) {
	if len(m.table) == 0 {
		return 0, 0, false
	}
	slot = m.route(key)
	b := m.table[slot]
	if b == nil {
		return slot, 0, false
	}
	offset = b.indexOf(key)
	if offset < 0 {
		return slot, 0, false
	}
	return slot, offset, true
}

func (m *Map[K, V]) entry(key K) (*Entry[K, V], error) {
	slot, offset, ok := m.locate(key)
	if !ok {
		return nil, ErrNotFound.WithDetails(fmt.Sprintf("key %v", key))
	}
	return m.table[slot].entries[offset], nil
}

// At returns a pointer to the value stored under key, inserting the zero
// value first when the key is absent. The pointer stays valid until the key
// is removed.
func (m *Map[K, V]) At(key K) *V {
	m.init()

	b := m.ensureBucket(m.route(key))
	if i := b.indexOf(key); i >= 0 {
		return &b.entries[i].Value
	}

	e := &Entry[K, V]{key: key}
	b.entries = append(b.entries, e)
	m.size++
	return &e.Value
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	*m.At(key) = value
}

// Get returns the value stored under key, or ErrNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	e, err := m.entry(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value, nil
}

// Lookup returns a pointer to the value stored under key, or ErrNotFound.
// Unlike At it never inserts.
func (m *Map[K, V]) Lookup(key K) (*V, error) {
	e, err := m.entry(key)
	if err != nil {
		return nil, err
	}
	return &e.Value, nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, _, ok := m.locate(key)
	return ok
}

// Remove deletes key from the map, or returns ErrNotFound.
func (m *Map[K, V]) Remove(key K) error {
	slot, offset, ok := m.locate(key)
	if !ok {
		return ErrNotFound.WithDetails(fmt.Sprintf("key %v", key))
	}
	m.removeEntry(slot, offset)
	return nil
}

func (m *Map[K, V]) removeEntry(slot, offset int) {
	m.table[slot].erase(offset)
	m.size--
	m.releaseIfEmpty(slot)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the number of slots. It is 0 only for a zero-value or
// moved-from map.
func (m *Map[K, V]) Capacity() int {
	return len(m.table)
}

// Clear removes all entries, keeping the capacity.
func (m *Map[K, V]) Clear() {
	clear(m.table)
	m.size = 0
}
