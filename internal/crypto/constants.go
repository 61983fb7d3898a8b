package crypto

const (
	// RSAKeyBits is the fixed modulus size of the key-transport keypair.
	RSAKeyBits = 1536

	// HeaderSize is the byte length of the asymmetric-encrypted Envelope at
	// the front of every protected blob, equal to the modulus size in bytes.
	HeaderSize = RSAKeyBits / 8

	// SymKeySize is the size of the per-call AES-128 symmetric key in bytes.
	SymKeySize = 16
	// IVSize is the size of the CBC initialization vector in bytes.
	IVSize = 16
	// DigestSize is the size of the SHA-256 integrity digest in bytes.
	DigestSize = 32

	// EnvelopeSize is the fixed plaintext size of the Envelope in bytes:
	// mode byte, three length tags, key, IV and digest.
	EnvelopeSize = 1 + 1 + SymKeySize + 1 + IVSize + 1 + DigestSize

	// ModeNoSalt tags an Envelope whose key and IV are stored unmasked.
	ModeNoSalt = 1
	// ModeSalted tags an Envelope whose key and IV are XOR-masked with the
	// two halves of SHA-256(salt).
	ModeSalted = 2
)

// Field offsets within the marshaled 68-byte Envelope.
const (
	modeOffset      = 0
	keyTagOffset    = 1
	keyOffset       = 2
	ivTagOffset     = keyOffset + SymKeySize
	ivOffset        = ivTagOffset + 1
	digestTagOffset = ivOffset + IVSize
	digestOffset    = digestTagOffset + 1
)
