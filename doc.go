/*
Package hashtab provides a fixed-size chained hash table mapping text or
binary keys to integer values.

Table is sized once at creation and never resized. It is meant for
lookup-heavy workloads such as interning phone, word or model names, where
the number of keys is roughly known up front.

Basic usage:

	import "github.com/shaijuptk/hashtab"

	// Room for about 100 keys; "aa" and "AA" are the same key
	t := hashtab.New(100, hashtab.CaseInsensitive)
	defer t.Free()

	// Enter returns the value stored for the key, which is the
	// first value ever entered for it
	id := t.Enter("SIL", 0)

	// Lookup reports whether the key is present
	if v, ok := t.Lookup("sil"); ok {
		fmt.Println("id:", v, id)
	}

	// Binary keys may contain zero bytes
	t.EnterBytes([]byte{0x01, 0x00, 0x02}, 7)

Features:

  - Table capacity is picked from a fixed list of primes, at least 1.5x
    the requested size
  - Optional case-insensitive (ASCII) keys
  - Text and length-delimited binary keys share one code path
  - Keys are stored by reference and never copied
  - The first value entered for a key wins; there is no update or delete

Implementation Details:

Each bucket holds the arena index of the first entry that hashed to it.
Further colliding entries are chained from the head through the arena, each
new one linked directly after the head. The hash is tuned for short English
words: every byte is shifted left by an offset that grows by 5 per byte and
wraps back by 24 once it reaches 25.

Table is not safe for concurrent use. Callers sharing a table between
goroutines must serialize every call, including Lookup.

Keys handed to EnterBytes must not be modified while the table is in use,
since stored keys are never rehashed.
*/
package hashtab
