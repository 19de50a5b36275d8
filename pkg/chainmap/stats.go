package chainmap

// SlotStats describes one occupied slot.
type SlotStats struct {
	Index int
	Count int
}

// Stats summarizes how entries are spread over the table.
type Stats struct {
	Capacity     int
	Len          int
	Occupied     int         // slots holding a bucket
	LongestChain int         // entries in the fullest bucket
	Slots        []SlotStats // occupied slots only, in slot order
}

// LoadFactor returns entries per slot.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Capacity)
}

// Stats returns statistics about the table layout.
func (m *Map[K, V]) Stats() Stats {
	stats := Stats{
		Capacity: len(m.table),
		Len:      m.size,
	}
	for i, b := range m.table {
		if b == nil {
			continue
		}
		n := len(b.entries)
		stats.Occupied++
		stats.LongestChain = max(stats.LongestChain, n)
		stats.Slots = append(stats.Slots, SlotStats{Index: i, Count: n})
	}
	return stats
}
