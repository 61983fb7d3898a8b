package keystore

import (
	"errors"
	"fmt"

	"github.com/cardkeep/protect-go/internal/crypto"
)

const (
	// ServiceName identifies the application to the native key container.
	ServiceName = "cardkeep"

	// ContainerName is the fixed identity under which the keypair is stored
	// in the native secure key container.
	ContainerName = "CardKeepDataProtection"

	// KeyFileName is the name of the fallback key file inside the
	// application-data directory.
	KeyFileName = "keypair.json"

	// DefaultDirName is the per-user application-data directory name,
	// relative to os.UserConfigDir.
	DefaultDirName = "cardkeep"
)

// ErrPlatformUnsupported reports that no native secure key container is
// available on this platform. It never escapes this package: Open recovers
// by falling back to the file-backed store.
var ErrPlatformUnsupported = errors.New("native secure key container unavailable")

// Store resolves the installation keypair.
//
// GetKeypair is idempotent: the keypair is loaded (or created and persisted)
// on first call and cached for the remainder of the process. All
// implementations are safe for concurrent use.
type Store interface {
	// GetKeypair returns the cached keypair, loading or creating it on
	// first call.
	GetKeypair() (*crypto.Keypair, error)

	// Name returns the backend name for logging and diagnostics.
	// Examples: "native", "file".
	Name() string
}

// Config holds configuration shared by all key store backends.
type Config struct {
	// DataDir overrides the application-data directory used by the file
	// backend. Empty means os.UserConfigDir()/cardkeep.
	DataDir string

	// ContainerName overrides the native container item name.
	// Empty means ContainerName.
	ContainerName string

	// Passphrase, when non-empty, seals the fallback key file with
	// scrypt + secretbox. It applies to the file backend only.
	Passphrase []byte

	// DisableNative forces the file backend even when a native secure key
	// container is available.
	DisableNative bool
}

// Open selects a backend for this platform: the native secure key container
// when capability probing finds one, otherwise the file-backed store.
func Open(cfg Config) (Store, error) {
	if !cfg.DisableNative {
		s, err := NewRingStore(cfg)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrPlatformUnsupported) {
			return nil, err
		}
	}
	return NewFileStore(cfg)
}

// StoreError reports persisted key material that is present but unusable.
// The store never regenerates over an existing keypair, which would silently
// invalidate all previously protected data.
type StoreError struct {
	// Path is the key file path or container item name.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("key store %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}
