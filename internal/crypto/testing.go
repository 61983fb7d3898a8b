package crypto

import "io"

// SetRandReaderForTesting swaps the random source behind GenerateKeypair so
// tests can exercise the generation failure path with a broken reader. The
// returned function restores the previous source; callers must defer it.
func SetRandReaderForTesting(r io.Reader) func() {
	prev := randReader
	randReader = r
	return func() { randReader = prev }
}
