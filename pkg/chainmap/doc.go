// Package chainmap provides a fixed-capacity hash map with separate chaining.
//
// Keys are routed to one of Capacity slots by hash(key) mod capacity. Each
// slot holds either nothing or a bucket of entries kept in insertion order.
// Buckets are created on the first insertion into their slot and released
// when their last entry is removed. The table never grows or rehashes.
//
// Features:
//
//   - Insert-or-access: At returns a pointer to the value, inserting the zero value on a miss
//   - Lookup without insertion: Get, Lookup, Contains, Find
//   - Removal by key or by iterator
//   - Bidirectional iterators over (slot, offset) positions, plus range functions
//   - Deep copy, move, and content equality independent of capacity
//
// Usage:
//
//	m, err := chainmap.New[int, string](chainmap.WithCapacity(64))
//	if err != nil {
//		return err
//	}
//	*m.At(1) = "a"
//	v, err := m.Get(1)
//	for it := m.Begin(); !it.IsEnd(); it.Next() {
//		p, _ := it.Pair()
//		fmt.Println(p.Key, p.Value)
//	}
//
// Hashing:
//
// Integer keys hash to themselves, string keys use MurmurHash3, and key types
// implementing Hashable supply their own hash. See NewHasher.
//
// Iterator validity:
//
// Iterators borrow their map. Any structural change (inserting a new key,
// removing, Clear, CopyFrom, MoveFrom) invalidates every outstanding
// iterator of that map. Writing through an existing value pointer is not a
// structural change.
//
// Thread Safety:
//
// A Map is not safe for concurrent use. Callers sharing a map between
// goroutines must synchronize all access externally.
package chainmap
