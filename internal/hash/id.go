package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given entry name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
