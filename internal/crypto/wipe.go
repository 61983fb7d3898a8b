package crypto

// Wipe zeroes b in place. Sensitive buffers (keys, IVs, Envelopes, digests,
// rejected plaintext) are wiped on every exit path, not left for the garbage
// collector to reclaim on its own schedule.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
