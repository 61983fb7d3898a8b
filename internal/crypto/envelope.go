package crypto

// Envelope is the fixed 68-byte plaintext structure carried in the
// asymmetric header of every protected blob:
//
//	[0]       mode (1 = no salt, 2 = salted)
//	[1]       key length tag, always 16
//	[2:18]    symmetric key
//	[18]      IV length tag, always 16
//	[19:35]   initialization vector
//	[35]      digest length tag, always 32
//	[36:68]   SHA-256 digest of the original plaintext
//
// An Envelope is ephemeral: it is built fresh for each Protect call and
// wiped immediately after use.
type Envelope struct {
	Mode      byte
	KeyTag    byte
	Key       [SymKeySize]byte
	IVTag     byte
	IV        [IVSize]byte
	DigestTag byte
	Digest    [DigestSize]byte
}

// NewEnvelope builds an Envelope with correct length tags. key, iv and
// digest must have the fixed sizes; the bytes are copied.
func NewEnvelope(mode byte, key, iv, digest []byte) *Envelope {
	e := &Envelope{
		Mode:      mode,
		KeyTag:    SymKeySize,
		IVTag:     IVSize,
		DigestTag: DigestSize,
	}
	copy(e.Key[:], key)
	copy(e.IV[:], iv)
	copy(e.Digest[:], digest)
	return e
}

// ParseEnvelope decodes a marshaled Envelope. For any input that is not
// exactly EnvelopeSize bytes it returns the all-zero Envelope, which is
// well-formed to operate on but fails every validity check.
func ParseEnvelope(buf []byte) *Envelope {
	e := &Envelope{}
	if len(buf) != EnvelopeSize {
		return e
	}
	e.Mode = buf[modeOffset]
	e.KeyTag = buf[keyTagOffset]
	copy(e.Key[:], buf[keyOffset:keyOffset+SymKeySize])
	e.IVTag = buf[ivTagOffset]
	copy(e.IV[:], buf[ivOffset:ivOffset+IVSize])
	e.DigestTag = buf[digestTagOffset]
	copy(e.Digest[:], buf[digestOffset:digestOffset+DigestSize])
	return e
}

// Marshal encodes the Envelope into its fixed 68-byte layout.
// The caller is responsible for wiping the returned buffer.
func (e *Envelope) Marshal() []byte {
	buf := make([]byte, EnvelopeSize)
	buf[modeOffset] = e.Mode
	buf[keyTagOffset] = e.KeyTag
	copy(buf[keyOffset:], e.Key[:])
	buf[ivTagOffset] = e.IVTag
	copy(buf[ivOffset:], e.IV[:])
	buf[digestTagOffset] = e.DigestTag
	copy(buf[digestOffset:], e.Digest[:])
	return buf
}

// ValidTags reports whether the three length tags carry the mandatory
// values {16, 16, 32}. Unprotect must not trust the key, IV or digest
// before this check passes.
func (e *Envelope) ValidTags() bool {
	return e.KeyTag == SymKeySize && e.IVTag == IVSize && e.DigestTag == DigestSize
}

// ValidMode reports whether the mode byte matches the salt the caller
// supplied: ModeSalted when salt bytes are present, ModeNoSalt otherwise.
func (e *Envelope) ValidMode(salted bool) bool {
	if salted {
		return e.Mode == ModeSalted
	}
	return e.Mode == ModeNoSalt
}

// Wipe zeroes the Envelope's fields.
func (e *Envelope) Wipe() {
	e.Mode = 0
	e.KeyTag = 0
	e.IVTag = 0
	e.DigestTag = 0
	Wipe(e.Key[:])
	Wipe(e.IV[:])
	Wipe(e.Digest[:])
}
