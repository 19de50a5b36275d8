package chainmap

// position is a cursor into a map: the slot index and the offset inside that
// slot's bucket. End is always (capacity, 0).
//
// A position is only meaningful until the next structural change of its map
// (an insertion of a new key, a removal, Clear, or a copy/move into the map).
// Stale positions are reported as ErrIteratorInvalid where that is
// detectable, but a stale position may also silently point at a different
// entry. Callers must re-obtain iterators after mutating.
type position[K comparable, V any] struct {
	m      *Map[K, V]
	slot   int
	offset int
}

func (p position[K, V]) isEnd() bool {
	return p.slot == len(p.m.table) && p.offset == 0
}

func (p position[K, V]) live() bool {
	if p.slot < 0 || p.slot >= len(p.m.table) {
		return false
	}
	b := p.m.table[p.slot]
	return b != nil && p.offset >= 0 && p.offset < len(b.entries)
}

func (p position[K, V]) entry() (*Entry[K, V], error) {
	if p.m == nil {
		return nil, ErrIteratorInvalid.WithDetails("iterator is not bound to a map")
	}
	if p.isEnd() {
		return nil, ErrOutOfRange.WithDetails("dereference of end iterator")
	}
	if !p.live() {
		return nil, ErrIteratorInvalid.WithDetails("stale iterator")
	}
	return p.m.table[p.slot].entries[p.offset], nil
}

func (p *position[K, V]) next() error {
	if p.m == nil {
		return ErrIteratorInvalid.WithDetails("iterator is not bound to a map")
	}
	if p.isEnd() {
		return ErrOutOfRange.WithDetails("advance past end")
	}
	if !p.live() {
		return ErrIteratorInvalid.WithDetails("stale iterator")
	}

	if p.offset+1 < len(p.m.table[p.slot].entries) {
		p.offset++
		return nil
	}
	*p = p.m.seek(p.slot + 1)
	return nil
}

func (p *position[K, V]) prev() error {
	if p.m == nil {
		return ErrIteratorInvalid.WithDetails("iterator is not bound to a map")
	}
	atEnd := p.isEnd()
	if !atEnd && !p.live() {
		return ErrIteratorInvalid.WithDetails("stale iterator")
	}

	if !atEnd && p.offset > 0 {
		p.offset--
		return nil
	}
	for i := p.slot - 1; i >= 0; i-- {
		if b := p.m.table[i]; b != nil {
			p.slot = i
			p.offset = len(b.entries) - 1
			return nil
		}
	}
	return ErrOutOfRange.WithDetails("retreat before begin")
}

// seek returns the first entry at or after slot from, or end.
func (m *Map[K, V]) seek(from int) position[K, V] {
	for i := from; i < len(m.table); i++ {
		if m.table[i] != nil {
			return position[K, V]{m: m, slot: i}
		}
	}
	return m.end()
}

func (m *Map[K, V]) end() position[K, V] {
	return position[K, V]{m: m, slot: len(m.table)}
}

func (m *Map[K, V]) find(key K) position[K, V] {
	slot, offset, ok := m.locate(key)
	if !ok {
		return m.end()
	}
	return position[K, V]{m: m, slot: slot, offset: offset}
}

// ConstIterator is a read-only cursor over a map's entries.
//
// Order is slot order, then insertion order within a slot. The zero
// ConstIterator is unbound and every operation on it fails with
// ErrIteratorInvalid.
type ConstIterator[K comparable, V any] struct {
	pos position[K, V]
}

// Next advances to the following entry, or to end after the last one.
// It returns ErrOutOfRange when already at end.
func (it *ConstIterator[K, V]) Next() error {
	return it.pos.next()
}

// Prev moves to the preceding entry. From end it moves to the last entry.
// It returns ErrOutOfRange when already at begin.
func (it *ConstIterator[K, V]) Prev() error {
	return it.pos.prev()
}

// IsEnd reports whether the iterator is the end sentinel of its map.
func (it ConstIterator[K, V]) IsEnd() bool {
	return it.pos.m != nil && it.pos.isEnd()
}

// Equal reports whether both iterators belong to the same map and point at
// the same position. Iterators of different maps are never equal.
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.pos == other.pos
}

// Key returns the key at the current position.
func (it ConstIterator[K, V]) Key() (K, error) {
	e, err := it.pos.entry()
	if err != nil {
		var zero K
		return zero, err
	}
	return e.key, nil
}

// Value returns a copy of the value at the current position.
func (it ConstIterator[K, V]) Value() (V, error) {
	e, err := it.pos.entry()
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value, nil
}

// Pair returns a copy of the entry at the current position.
func (it ConstIterator[K, V]) Pair() (Pair[K, V], error) {
	e, err := it.pos.entry()
	if err != nil {
		return Pair[K, V]{}, err
	}
	return Pair[K, V]{Key: e.key, Value: e.Value}, nil
}

// Iterator is a cursor that also allows modifying values in place.
// It has the same position semantics as ConstIterator.
type Iterator[K comparable, V any] struct {
	pos position[K, V]
}

// Next advances to the following entry, or to end after the last one.
func (it *Iterator[K, V]) Next() error {
	return it.pos.next()
}

// Prev moves to the preceding entry.
func (it *Iterator[K, V]) Prev() error {
	return it.pos.prev()
}

// IsEnd reports whether the iterator is the end sentinel of its map.
func (it Iterator[K, V]) IsEnd() bool {
	return it.pos.m != nil && it.pos.isEnd()
}

// Equal reports whether both iterators point at the same position of the
// same map.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.pos == other.pos
}

// Const returns a read-only iterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: it.pos}
}

// Key returns the key at the current position.
func (it Iterator[K, V]) Key() (K, error) {
	return it.Const().Key()
}

// Value returns a copy of the value at the current position.
func (it Iterator[K, V]) Value() (V, error) {
	return it.Const().Value()
}

// Pair returns a copy of the entry at the current position.
func (it Iterator[K, V]) Pair() (Pair[K, V], error) {
	return it.Const().Pair()
}

// Entry returns the stored entry at the current position.
func (it Iterator[K, V]) Entry() (*Entry[K, V], error) {
	return it.pos.entry()
}

// ValuePtr returns a pointer to the value at the current position.
func (it Iterator[K, V]) ValuePtr() (*V, error) {
	e, err := it.pos.entry()
	if err != nil {
		return nil, err
	}
	return &e.Value, nil
}

// Begin returns an iterator at the first entry, or End if the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{pos: m.seek(0)}
}

// End returns the end sentinel.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{pos: m.end()}
}

// Find returns an iterator at key, or End if key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{pos: m.find(key)}
}

// ConstBegin is the read-only form of Begin.
func (m *Map[K, V]) ConstBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: m.seek(0)}
}

// ConstEnd is the read-only form of End.
func (m *Map[K, V]) ConstEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: m.end()}
}

// ConstFind is the read-only form of Find.
func (m *Map[K, V]) ConstFind(key K) ConstIterator[K, V] {
	return ConstIterator[K, V]{pos: m.find(key)}
}

// Mutable returns a mutable iterator at the position of it. The iterator
// must belong to m; end is accepted.
func (m *Map[K, V]) Mutable(it ConstIterator[K, V]) (Iterator[K, V], error) {
	if it.pos.m != m {
		return m.End(), ErrIteratorInvalid.WithDetails("iterator belongs to another map")
	}
	if !it.pos.isEnd() && !it.pos.live() {
		return m.End(), ErrIteratorInvalid.WithDetails("stale iterator")
	}
	return Iterator[K, V]{pos: it.pos}, nil
}

// RemoveAt deletes the entry under it and returns an iterator at the entry
// that followed it, or End. The iterator must belong to m and point at an
// entry; end, foreign and stale iterators fail with ErrIteratorInvalid and
// leave the map unchanged.
//
// Staleness is only detected when the position no longer exists. An iterator
// kept across a removal or insertion may name a different live entry, and
// RemoveAt then deletes that entry without error.
func (m *Map[K, V]) RemoveAt(it ConstIterator[K, V]) (Iterator[K, V], error) {
	p := it.pos
	switch {
	case p.m != m:
		return m.End(), ErrIteratorInvalid.WithDetails("iterator belongs to another map")
	case p.isEnd():
		return m.End(), ErrIteratorInvalid.WithDetails("cannot remove end iterator")
	case !p.live():
		return m.End(), ErrIteratorInvalid.WithDetails("stale iterator")
	}

	m.removeEntry(p.slot, p.offset)

	if b := m.table[p.slot]; b != nil && p.offset < len(b.entries) {
		return Iterator[K, V]{pos: p}, nil
	}
	return Iterator[K, V]{pos: m.seek(p.slot + 1)}, nil
}
