// Command hashstat reports how a word list spreads over a hashtab.Table.
//
// Words are read from the named files, or stdin when none are given, and
// entered in order with their first-seen ordinal as the value. The table's
// bucket statistics are printed next to those the same capacity would get
// with xxhash64, as a baseline for the word hash. With -top N the N longest
// chains are listed with their keys.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/shaijuptk/hashtab"
)

var (
	size    = flag.Int("size", 0, "requested table size (default: number of words read)")
	nocase  = flag.Bool("nocase", false, "fold ASCII case of keys")
	top     = flag.Int("top", 0, "list the N longest chains")
	asJSON  = flag.Bool("json", false, "print the report as JSON")
	verbose = flag.Bool("v", false, "log every duplicate word")
)

// report is what hashstat prints.
type report struct {
	Words    int           `json:"words"`
	Distinct int           `json:"distinct"`
	Mode     string        `json:"mode"`
	Table    hashtab.Stats `json:"table"`
	XXHash   hashtab.Stats `json:"xxhash"`
	Longest  []chain       `json:"longest,omitempty"`
}

// chain is one bucket's keys, head first.
type chain struct {
	Bucket int      `json:"bucket"`
	Keys   []string `json:"keys"`
}

// options are the flag values run needs.
type options struct {
	size   int
	mode   hashtab.CaseMode
	top    int
	asJSON bool
}

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	mode := hashtab.CaseSensitive
	if *nocase {
		mode = hashtab.CaseInsensitive
	}

	opts := options{size: *size, mode: mode, top: *top, asJSON: *asJSON}
	if err := run(os.Stdout, log, flag.Args(), opts); err != nil {
		log.WithError(err).Error("hashstat failed")
		os.Exit(1)
	}
}

func run(w io.Writer, log logrus.FieldLogger, files []string, opts options) error {
	words, err := readWords(files)
	if err != nil {
		return err
	}
	size := opts.size
	if size <= 0 {
		size = len(words)
	}
	mode := opts.mode

	t := hashtab.New(size, mode, hashtab.WithLogger(log))
	defer t.Free()

	for i, word := range words {
		if v := t.EnterBytes(word, i); v != i {
			log.WithFields(logrus.Fields{
				"word":  string(word),
				"first": v,
			}).Debug("duplicate word")
		}
	}

	r := report{
		Words:    len(words),
		Distinct: t.Len(),
		Mode:     mode.String(),
		Table:    t.Stats(),
		XXHash:   xxhashSpread(t, mode == hashtab.CaseInsensitive),
		Longest:  longestChains(t, opts.top),
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	fmt.Fprintf(w, "words=%d distinct=%d mode=%s capacity=%d\n", r.Words, r.Distinct, r.Mode, r.Table.Capacity)
	fmt.Fprintf(w, "%-8s %12s %14s %12s\n", "hash", "used_buckets", "longest_chain", "load_factor")
	for _, row := range []struct {
		name string
		st   hashtab.Stats
	}{{"table", r.Table}, {"xxhash", r.XXHash}} {
		fmt.Fprintf(w, "%-8s %12d %14d %12.3f\n", row.name, row.st.UsedBuckets, row.st.LongestChain, row.st.LoadFactor)
	}
	for _, c := range r.Longest {
		fmt.Fprintf(w, "bucket %d (%d): %s\n", c.Bucket, len(c.Keys), strings.Join(c.Keys, " "))
	}
	return nil
}

// longestChains returns up to n chains of t, longest first. Ties go to the
// lower bucket index.
func longestChains(t *hashtab.Table, n int) []chain {
	if n <= 0 {
		return nil
	}

	// Range visits buckets in ascending order, so each chain is a run.
	var chains []chain
	t.Range(func(e hashtab.Entry) bool {
		b := t.BucketOf(e.Key)
		if len(chains) == 0 || chains[len(chains)-1].Bucket != b {
			chains = append(chains, chain{Bucket: b})
		}
		last := &chains[len(chains)-1]
		last.Keys = append(last.Keys, e.Key)
		return true
	})

	sort.SliceStable(chains, func(i, j int) bool {
		return len(chains[i].Keys) > len(chains[j].Keys)
	})
	if len(chains) > n {
		chains = chains[:n]
	}
	return chains
}

// readWords returns the whitespace-separated words of every file. The
// words alias the file contents, which stay alive as long as the words do.
func readWords(files []string) ([][]byte, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return bytes.Fields(data), nil
	}

	var words [][]byte
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		words = append(words, bytes.Fields(data)...)
	}
	return words, nil
}

// xxhashSpread buckets the distinct keys of t by xxhash64 over the same
// capacity.
func xxhashSpread(t *hashtab.Table, fold bool) hashtab.Stats {
	chains := make([]int, t.Capacity())
	t.Range(func(e hashtab.Entry) bool {
		key := e.Key
		if fold {
			key = foldASCII(key)
		}
		chains[xxhash.Sum64String(key)%uint64(len(chains))]++
		return true
	})

	st := hashtab.Stats{Capacity: len(chains), Entries: t.Len()}
	for _, n := range chains {
		if n == 0 {
			continue
		}
		st.UsedBuckets++
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	st.LoadFactor = float64(st.Entries) / float64(st.Capacity)
	return st
}

// foldASCII upper-cases ASCII letters only, matching the table's folding.
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
