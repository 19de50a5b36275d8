package chainmap

import (
	"hash/maphash"
	"reflect"

	"github.com/spaolacci/murmur3"
)

// Hashable is implemented by key types that supply their own hash.
// A key type implementing it, with a value or a pointer receiver, takes
// precedence over the built-in hashers. For interface key types the check is
// made per key, on the dynamic value.
type Hashable interface {
	Hash() uint64
}

// Hasher computes the slot hash for keys of type K. Key equality is always
// the language == on K; the hasher only decides routing.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// NewHasher returns the built-in hasher for K.
//
// Integer kinds hash to their own value, so a key k lands in slot
// k mod capacity. String kinds use MurmurHash3. Any other comparable type
// falls back to hash/maphash with a seed fixed for the hasher's lifetime.
func NewHasher[K comparable]() Hasher[K] {
	t := reflect.TypeFor[K]()
	switch {
	case t.Kind() == reflect.Interface:
		return dynamicHasher[K]{seed: maphash.MakeSeed()}
	case t.Implements(hashableType):
		return hashableHasher[K]{}
	case reflect.PointerTo(t).Implements(hashableType):
		return addrHashableHasher[K]{}
	}

	var zero K
	switch any(zero).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return intHasher[K]{}
	case string:
		return stringHasher[K]{}
	}

	// Named types over a primitive (type userID int) go through reflection.
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflectIntHasher[K]{}
	case reflect.String:
		return reflectStringHasher[K]{}
	}

	return comparableHasher[K]{seed: maphash.MakeSeed()}
}

var hashableType = reflect.TypeFor[Hashable]()

type hashableHasher[K comparable] struct{}

func (hashableHasher[K]) Hash(key K) uint64 {
	return any(key).(Hashable).Hash()
}

// addrHashableHasher serves key types whose Hash has a pointer receiver.
type addrHashableHasher[K comparable] struct{}

func (addrHashableHasher[K]) Hash(key K) uint64 {
	return any(&key).(Hashable).Hash()
}

// dynamicHasher serves interface key types.
type dynamicHasher[K comparable] struct {
	seed maphash.Seed
}

func (h dynamicHasher[K]) Hash(key K) uint64 {
	if hk, ok := any(key).(Hashable); ok {
		return hk.Hash()
	}
	return maphash.Comparable(h.seed, key)
}

type intHasher[K comparable] struct{}

func (intHasher[K]) Hash(key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	}
	panic("chainmap: intHasher used with non-integer key")
}

type stringHasher[K comparable] struct{}

func (stringHasher[K]) Hash(key K) uint64 {
	return murmur3.Sum64([]byte(any(key).(string)))
}

type reflectIntHasher[K comparable] struct{}

func (reflectIntHasher[K]) Hash(key K) uint64 {
	v := reflect.ValueOf(key)
	if v.CanInt() {
		return uint64(v.Int())
	}
	return v.Uint()
}

type reflectStringHasher[K comparable] struct{}

func (reflectStringHasher[K]) Hash(key K) uint64 {
	return murmur3.Sum64([]byte(reflect.ValueOf(key).String()))
}

type comparableHasher[K comparable] struct {
	seed maphash.Seed
}

func (h comparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}
