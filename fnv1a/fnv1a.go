// Package fnv1a implements the 64-bit FNV-1a non-cryptographic hash over
// byte strings.
package fnv1a

import "git.home.luguber.info/inful/collections/internal/contract"

const (
	// Offset64 is the FNV-1a 64-bit offset basis.
	Offset64 uint64 = 14695981039346656037
	// Prime64 is the FNV 64-bit prime.
	Prime64 uint64 = 1099511628211
)

// Sum64 returns the FNV-1a hash of data. Multiplication wraps modulo 2^64.
// data must not be empty.
func Sum64(data []byte) uint64 {
	contract.NonEmpty("data", data)

	hash := Offset64
	for _, c := range data {
		hash ^= uint64(c)
		hash *= Prime64
	}
	return hash
}
