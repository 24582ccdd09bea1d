package hashtab

// Stats describes how entries are spread over a table's buckets.
type Stats struct {
	Capacity     int     `json:"capacity"`
	Entries      int     `json:"entries"`
	UsedBuckets  int     `json:"used_buckets"`
	LongestChain int     `json:"longest_chain"`
	LoadFactor   float64 `json:"load_factor"`
}

// Stats walks every bucket and reports occupancy.
func (t *Table) Stats() Stats {
	t.mustLive()
	st := Stats{
		Capacity: len(t.buckets),
		Entries:  len(t.nodes),
	}
	for _, head := range t.buckets {
		if head == 0 {
			continue
		}
		st.UsedBuckets++
		n := 0
		for i := head; i != 0; i = t.nodes[i-1].next {
			n++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	st.LoadFactor = float64(st.Entries) / float64(st.Capacity)
	return st
}
