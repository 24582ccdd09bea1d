package hashtab

// primes are the only capacities a Table can have. A request larger than
// the last entry is clamped to it; chaining still holds any number of keys.
var primes = [...]int{
	101, 211, 307, 401, 503, 601, 701, 809, 907,
	1009, 1201, 1601, 2003, 2411, 3001, 4001, 5003, 6007, 7001, 8009, 9001,
	10007, 12007, 16001, 20011, 24001, 30011, 40009, 50021, 60013, 70001, 80021, 90001,
	100003, 120011, 160001, 200003, 240007, 300007, 400009, 500009, 600011, 700001, 800011, 900001,
}

// MaxCapacity is the largest capacity a Table can be created with.
const MaxCapacity = 900001

// capacityFor returns the smallest listed prime not below 1.5x size.
// The second result is false when the request had to be clamped.
func capacityFor(size int) (int, bool) {
	if size > MaxCapacity {
		return MaxCapacity, false
	}
	want := size + size>>1
	for _, p := range primes {
		if p >= want {
			return p, true
		}
	}
	return primes[len(primes)-1], false
}
