package protect

import (
	"errors"
	"fmt"

	"github.com/cardkeep/protect-go/internal/crypto"
	"github.com/cardkeep/protect-go/internal/keystore"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidInput is returned when a required buffer argument is
	// absent. It is rejected before any cryptographic work.
	ErrInvalidInput = errors.New("required input buffer is missing")

	// ErrInvalidCiphertext is returned when Unprotect rejects a blob. It is
	// reported identically for every failed validity check; callers learn
	// only that the blob is unusable, never which stage rejected it.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrKeyStore is returned when persisted key material is present but
	// unusable. This is fatal and never auto-recovered: regenerating the
	// keypair would silently orphan all previously protected data.
	ErrKeyStore = errors.New("key store failure")
)

// ProtectError is implemented by all typed errors in this package.
type ProtectError interface {
	error
	ProtectError() // marker method
}

// KeyStoreError reports persisted key material that is present but
// malformed, or a key backend that failed while loading or creating the
// installation keypair.
type KeyStoreError struct {
	// Path is the key file path or container item name, when known.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *KeyStoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("key store %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("key store: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyStoreError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyStoreError) Is(target error) bool {
	return target == ErrKeyStore
}

// ProtectError implements the ProtectError interface.
func (e *KeyStoreError) ProtectError() {}

// wrapError converts internal-package errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var storeErr *keystore.StoreError
	if errors.As(err, &storeErr) {
		return &KeyStoreError{Path: storeErr.Path, Err: storeErr.Err}
	}

	switch {
	case errors.Is(err, crypto.ErrMissingPlaintext),
		errors.Is(err, crypto.ErrMissingCiphertext):
		return ErrInvalidInput
	case errors.Is(err, crypto.ErrInvalidCiphertext):
		return ErrInvalidCiphertext
	case errors.Is(err, crypto.ErrNoPrivateKey):
		// A missing private component is a key configuration fault, not a
		// property of the ciphertext.
		return &KeyStoreError{Err: err}
	}

	return err
}
