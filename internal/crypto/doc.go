// Package crypto implements the hybrid encryption core behind Protect and
// Unprotect: per-call AES-128-CBC payload encryption, RSA-OAEP key transport
// of a fixed-layout Envelope, and SHA-256 integrity binding.
//
// # Blob Format
//
// A protected blob is header || body. The header is the RSA-OAEP encryption
// of the 68-byte Envelope under the installation keypair's public component
// and is always exactly 192 bytes (the 1536-bit modulus size). The body is
// the AES-128-CBC, PKCS#7-padded encryption of the payload.
//
// The Envelope carries the per-call symmetric key, the IV, a SHA-256 digest
// of the original plaintext, and a mode byte recording whether salt-masking
// was applied. Each of the three variable fields is preceded by a one-byte
// length tag (16, 16, 32) that Unprotect re-validates before trusting the
// contents.
//
// # Salt Masking
//
// When the caller supplies salt bytes, the first 16 bytes of SHA-256(salt)
// are XORed into the symmetric key and the next 16 bytes into the IV before
// the Envelope is sealed. This binds the blob to the exact salt bytes; it is
// a confounder, not a key-derivation function, and provides no stretching or
// domain separation.
//
// # Failure Model
//
// Unprotect evaluates four validity checks (blob length, header decryption,
// Envelope shape/mode, digest match) unconditionally and releases plaintext
// only when all four hold. Every failure surfaces as the single
// [ErrInvalidCiphertext]; distinguishing a bad header from bad padding or a
// bad digest would hand an attacker a decryption oracle.
//
// # Buffer Hygiene
//
// Symmetric keys, IVs, Envelopes, digests and rejected plaintext are zeroed
// on every exit path rather than left for the garbage collector.
package crypto
