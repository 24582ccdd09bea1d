package hashtab

import (
	"math"

	"github.com/sirupsen/logrus"
)

// CaseMode selects how keys are compared and hashed.
type CaseMode int

const (
	// CaseSensitive compares keys byte for byte.
	CaseSensitive CaseMode = iota
	// CaseInsensitive upper-cases ASCII letters before hashing and comparing.
	CaseInsensitive
)

func (m CaseMode) String() string {
	switch m {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// Entry is a key and the value stored for it. Key shares memory with the
// string or slice the key was entered with; it is never a copy.
type Entry struct {
	Key   string
	Value int
}

// maxEntries bounds the arena so chain indices fit in an int32.
var maxEntries = math.MaxInt32

// node is an arena slot. next is the arena index of the following entry in
// the same chain plus one, or 0 at the end of the chain.
type node struct {
	key  string
	val  int
	next int32
}

// Table is a fixed-capacity chained hash table. The zero value is not
// usable; create tables with New.
type Table struct {
	// buckets[i] is 1 + the arena index of bucket i's head, or 0 if empty
	buckets []int32
	nodes   []node
	fold    bool
	equal   func(a, b string) bool
	clamped bool
	log     logrus.FieldLogger
}

// New creates a table for about size keys. The capacity is the smallest
// listed prime that is at least 1.5 times size. Requests beyond
// MaxCapacity are clamped to it and logged as a warning.
func New(size int, mode CaseMode, opts ...Option) *Table {
	t := &Table{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(t)
	}

	capacity, ok := capacityFor(size)
	if !ok {
		t.clamped = true
		t.log.WithFields(logrus.Fields{
			"requested": size,
			"capacity":  capacity,
		}).Warn("very large hash table requested, clamping capacity")
	}
	t.init(capacity, mode)
	return t
}

func (t *Table) init(capacity int, mode CaseMode) {
	if capacity <= 0 {
		panic("hashtab: capacity must be positive")
	}
	t.buckets = make([]int32, capacity)
	t.fold = mode == CaseInsensitive
	if t.fold {
		t.equal = equalFold
	} else {
		t.equal = equalCase
	}
}

func (t *Table) mustLive() {
	if t.buckets == nil {
		panic("hashtab: use of freed table")
	}
}

// bucket returns the bucket index key hashes to.
func (t *Table) bucket(key string) int {
	return int(keySum(key, t.fold) % uint32(len(t.buckets)))
}

// find returns the arena index of key within bucket b, or -1.
func (t *Table) find(b int, key string) int {
	for i := t.buckets[b]; i != 0; i = t.nodes[i-1].next {
		n := &t.nodes[i-1]
		if len(n.key) == len(key) && t.equal(n.key, key) {
			return int(i - 1)
		}
	}
	return -1
}

// LookupBytes returns the value stored for key and whether it was found.
// Key may contain zero bytes; its length is len(key).
func (t *Table) LookupBytes(key []byte) (int, bool) {
	return t.lookup(bytesKey(key))
}

// Lookup is LookupBytes for a text key. The key ends at its first NUL
// byte, if it has one.
func (t *Table) Lookup(key string) (int, bool) {
	return t.lookup(textKey(key))
}

func (t *Table) lookup(key string) (int, bool) {
	t.mustLive()
	if i := t.find(t.bucket(key), key); i >= 0 {
		return t.nodes[i].val, true
	}
	return 0, false
}

// EnterBytes stores val for key unless key is already present, and returns
// the value the table now holds for key. An existing value is never
// replaced.
//
// The table keeps a reference to key rather than a copy. Its contents must
// not change for as long as the table is in use.
func (t *Table) EnterBytes(key []byte, val int) int {
	return t.enter(bytesKey(key), val)
}

// Enter is EnterBytes for a text key. The key ends at its first NUL byte,
// if it has one. Strings are immutable, so text keys are always safe to
// retain.
func (t *Table) Enter(key string, val int) int {
	return t.enter(textKey(key), val)
}

func (t *Table) enter(key string, val int) int {
	t.mustLive()
	b := t.bucket(key)
	if i := t.find(b, key); i >= 0 {
		return t.nodes[i].val
	}

	if len(t.nodes) >= maxEntries {
		panic("hashtab: too many entries")
	}
	t.nodes = append(t.nodes, node{key: key, val: val})
	idx := int32(len(t.nodes))

	head := t.buckets[b]
	if head == 0 {
		t.buckets[b] = idx
		return val
	}
	// Link directly after the head.
	t.nodes[idx-1].next = t.nodes[head-1].next
	t.nodes[head-1].next = idx
	return val
}

// Range calls fn for every entry in List order until fn returns false.
// The table must not be modified while Range is running.
func (t *Table) Range(fn func(Entry) bool) {
	t.mustLive()
	for _, head := range t.buckets {
		for i := head; i != 0; i = t.nodes[i-1].next {
			n := &t.nodes[i-1]
			if !fn(Entry{Key: n.key, Value: n.val}) {
				return
			}
		}
	}
}

// List returns a snapshot of every entry, bucket by bucket in ascending
// index order and head first within a bucket. The order depends on hashing
// and on insertion history; it is not insertion order.
func (t *Table) List() []Entry {
	t.mustLive()
	out := make([]Entry, 0, len(t.nodes))
	t.Range(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mustLive()
	return len(t.nodes)
}

// BucketOf returns the bucket index key hashes to. The whole of key is
// hashed, NUL bytes included, so an Entry.Key maps to its own bucket.
func (t *Table) BucketOf(key string) int {
	t.mustLive()
	return t.bucket(key)
}

// Capacity returns the number of buckets.
func (t *Table) Capacity() int {
	t.mustLive()
	return len(t.buckets)
}

// Mode returns the table's case mode.
func (t *Table) Mode() CaseMode {
	t.mustLive()
	if t.fold {
		return CaseInsensitive
	}
	return CaseSensitive
}

// Clamped reports whether the requested size exceeded MaxCapacity.
func (t *Table) Clamped() bool {
	t.mustLive()
	return t.clamped
}

// Free releases the buckets and every entry. Keys are not touched; they
// belong to the caller. Any later use of t panics.
func (t *Table) Free() {
	t.nodes = nil
	t.buckets = nil
	t.equal = nil
}
