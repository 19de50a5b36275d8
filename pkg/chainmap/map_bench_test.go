package chainmap

import (
	"strconv"
	"testing"
)

func BenchmarkAt_Insert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := MustNew[int, string]()
		*m.At(1) = "TODO"
	}
}

func BenchmarkGet(b *testing.B) {
	for _, capacity := range []int{16, 1024} {
		b.Run("capacity="+strconv.Itoa(capacity), func(b *testing.B) {
			m := MustNew[string, int](WithCapacity(capacity))
			keys := make([]string, 4096)
			for i := range keys {
				keys[i] = "key-" + strconv.Itoa(i)
				m.Set(keys[i], i)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := m.Get(keys[i%len(keys)]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	m := MustNew[int, int](WithCapacity(1024))
	for i := 0; i < 10000; i++ {
		m.Set(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for it := m.ConstBegin(); !it.IsEnd(); _ = it.Next() {
			v, _ := it.Value()
			sum += v
		}
		_ = sum
	}
}
