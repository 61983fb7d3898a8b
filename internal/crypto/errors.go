package crypto

import "errors"

var (
	// ErrMissingPlaintext is returned when the plaintext argument is absent.
	ErrMissingPlaintext = errors.New("plaintext is required")

	// ErrMissingCiphertext is returned when the ciphertext argument is absent.
	ErrMissingCiphertext = errors.New("ciphertext is required")

	// ErrInvalidCiphertext is the uniform failure for Unprotect. It is
	// returned for every failed validity check so that a caller cannot
	// learn which stage rejected the blob.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrNoPrivateKey is returned when Unprotect is attempted with a
	// public-only keypair.
	ErrNoPrivateKey = errors.New("keypair has no private component")

	// ErrMalformedKeyDocument is returned when a persisted key document is
	// present but structurally invalid.
	ErrMalformedKeyDocument = errors.New("malformed key document")
)
