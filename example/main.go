package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shaijuptk/hashtab"
)

func main() {
	log := logrus.New()

	// Phone set for a small acoustic model; names are case-insensitive
	phones := []string{"SIL", "AA", "AE", "AH", "B", "CH", "D", "sil", "aa"}

	t := hashtab.New(len(phones), hashtab.CaseInsensitive, hashtab.WithLogger(log))
	defer t.Free()

	fmt.Printf("Table created: capacity=%d mode=%s\n", t.Capacity(), t.Mode())

	// Intern each name; a repeated name keeps its first id
	next := 0
	for _, p := range phones {
		id := t.Enter(p, next)
		if id == next {
			next++
			fmt.Printf("%-4s => new id %d\n", p, id)
		} else {
			fmt.Printf("%-4s => existing id %d\n", p, id)
		}
	}

	for _, p := range []string{"Ch", "ZH"} {
		if id, found := t.Lookup(p); found {
			fmt.Printf("Lookup %s => %d\n", p, id)
		} else {
			fmt.Printf("Lookup %s => not found\n", p)
		}
	}

	// Binary keys: a triphone packed as three phone ids
	tri := []byte{byte(1), byte(0), byte(4)}
	t.EnterBytes(tri, 100)
	if id, found := t.LookupBytes(tri); found {
		fmt.Printf("Triphone %v => %d\n", tri, id)
	}

	fmt.Printf("%d entries:\n", t.Len())
	for _, e := range t.List() {
		fmt.Printf("  %q = %d\n", e.Key, e.Value)
	}

	st := t.Stats()
	fmt.Printf("Used buckets %d of %d, longest chain %d\n", st.UsedBuckets, st.Capacity, st.LongestChain)
}
