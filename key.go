package hashtab

import (
	"strings"
	"unsafe"
)

// upper folds ASCII lower case letters and leaves every other byte alone.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// keySum accumulates the bucket hash of key before the modulo.
//
// Bytes are treated as signed, so anything above 0x7f contributes a
// sign-extended value. This keeps bucket placement identical to tables
// built by the older C tools.
func keySum(key string, fold bool) uint32 {
	var h uint32
	s := 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		if fold {
			c = upper(c)
		}
		h += uint32(int32(int8(c)) << s)
		s += 5
		if s >= 25 {
			s -= 24
		}
	}
	return h
}

func equalCase(a, b string) bool {
	return a == b
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if upper(a[i]) != upper(b[i]) {
			return false
		}
	}
	return true
}

// textKey returns s up to its first NUL.
func textKey(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// bytesKey views b as a string without copying. The caller promises b is
// not modified while the string is in use.
func bytesKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
