package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" // #nosec G505 -- OAEP mask hash fixed by the blob format
	"crypto/sha256"
	"crypto/subtle"
)

// Protect encrypts plaintext into a header || body blob.
//
// A fresh 128-bit key and IV are drawn from the CSPRNG for every call. The
// payload is encrypted with AES-128-CBC, a SHA-256 digest of the plaintext
// is computed, and key, IV and digest are sealed into an Envelope that is
// RSA-OAEP encrypted under the keypair's public component. When salt is
// non-empty the key and IV are XOR-masked with SHA-256(salt) before sealing
// and the Envelope mode is set to 2.
//
// All working buffers are wiped before returning, on success and on error.
func Protect(kp *Keypair, plaintext, salt []byte) ([]byte, error) {
	if plaintext == nil {
		return nil, ErrMissingPlaintext
	}

	key := make([]byte, SymKeySize)
	iv := make([]byte, IVSize)
	defer Wipe(key)
	defer Wipe(iv)

	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}

	body, err := encryptCBC(key, iv, plaintext)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(plaintext)
	defer Wipe(digest[:])

	mode := byte(ModeNoSalt)
	if len(salt) > 0 {
		maskKeyIV(key, iv, salt)
		mode = ModeSalted
	}

	env := NewEnvelope(mode, key, iv, digest[:])
	defer env.Wipe()

	envBytes := env.Marshal()
	defer Wipe(envBytes)

	header, err := rsa.EncryptOAEP(sha1.New(), rand.Reader, kp.Public, envBytes, nil)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, len(header)+len(body))
	blob = append(blob, header...)
	blob = append(blob, body...)
	return blob, nil
}

// Unprotect reverses Protect. It evaluates four validity checks without
// short-circuiting and releases the plaintext only when all of them hold:
//
//	valid1: the blob is at least headerSize bytes
//	valid2: the header decrypts to exactly EnvelopeSize bytes
//	valid3: the Envelope length tags are {16, 16, 32} and the mode byte
//	        matches the presence of salt
//	valid4: SHA-256 of the decrypted body equals the Envelope digest
//
// Any failure surfaces as ErrInvalidCiphertext with no indication of which
// check rejected the blob. Recovered sensitive buffers are wiped before the
// error is returned.
func Unprotect(kp *Keypair, ciphertext, salt []byte) ([]byte, error) {
	if ciphertext == nil {
		return nil, ErrMissingCiphertext
	}
	if kp.Private == nil {
		return nil, ErrNoPrivateKey
	}

	headerSize := kp.Public.Size()

	// A blob shorter than the header is processed as header-only so that
	// the remaining checks run over well-formed (but failing) inputs.
	valid1 := len(ciphertext) >= headerSize
	header := ciphertext
	var body []byte
	if valid1 {
		header = ciphertext[:headerSize]
		body = ciphertext[headerSize:]
	}

	env := ParseEnvelope(nil) // all-zero substitute until the header proves out
	valid2 := false
	if raw, err := rsa.DecryptOAEP(sha1.New(), rand.Reader, kp.Private, header, nil); err == nil {
		if len(raw) == EnvelopeSize {
			env = ParseEnvelope(raw)
			valid2 = true
		}
		Wipe(raw)
	}
	defer env.Wipe()

	valid3 := env.ValidTags() && env.ValidMode(len(salt) > 0)

	key := make([]byte, SymKeySize)
	iv := make([]byte, IVSize)
	copy(key, env.Key[:])
	copy(iv, env.IV[:])
	defer Wipe(key)
	defer Wipe(iv)

	if len(salt) > 0 {
		maskKeyIV(key, iv, salt)
	}

	// decryptCBC reports cipher-level failure as a nil plaintext; the
	// digest comparison below then fails over the empty buffer.
	plaintext := decryptCBC(key, iv, body)

	sum := sha256.Sum256(plaintext)
	valid4 := subtle.ConstantTimeCompare(sum[:], env.Digest[:]) == 1
	Wipe(sum[:])

	if valid1 && valid2 && valid3 && valid4 {
		return plaintext, nil
	}
	Wipe(plaintext)
	return nil, ErrInvalidCiphertext
}

// maskKeyIV XOR-confounds the symmetric key and IV in place with the two
// halves of SHA-256(salt). Masking and unmasking are the same operation.
// This is a confounder, not a key-derivation function: it only prevents a
// recovered Envelope from being usable without the exact salt bytes.
func maskKeyIV(key, iv, salt []byte) {
	mask := sha256.Sum256(salt)
	for i := 0; i < SymKeySize; i++ {
		key[i] ^= mask[i]
	}
	for i := 0; i < IVSize; i++ {
		iv[i] ^= mask[SymKeySize+i]
	}
	Wipe(mask[:])
}
