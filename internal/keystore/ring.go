package keystore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/99designs/keyring"

	"github.com/cardkeep/protect-go/internal/crypto"
)

// nativeBackends are the keyring backends that qualify as a platform-native
// secure key container. The keyring file backend is deliberately excluded:
// the file fallback is FileStore, which owns the documented key file layout.
var nativeBackends = []keyring.BackendType{
	keyring.WinCredBackend,
	keyring.KeychainBackend,
	keyring.SecretServiceBackend,
	keyring.KWalletBackend,
	keyring.PassBackend,
}

// RingStore keeps the keypair document in the platform-native secure key
// container under a fixed container name.
type RingStore struct {
	ring keyring.Keyring
	item string

	mu sync.Mutex
	kp *crypto.Keypair
}

// NewRingStore opens the native secure key container. It returns
// ErrPlatformUnsupported when the platform offers none, in which case the
// caller falls back to the file-backed store.
func NewRingStore(cfg Config) (*RingStore, error) {
	available := keyring.AvailableBackends()
	allowed := make([]keyring.BackendType, 0, len(nativeBackends))
	for _, want := range nativeBackends {
		for _, have := range available {
			if want == have {
				allowed = append(allowed, want)
			}
		}
	}
	if len(allowed) == 0 {
		return nil, ErrPlatformUnsupported
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatformUnsupported, err)
	}

	return NewRingStoreWith(ring, cfg.ContainerName), nil
}

// NewRingStoreWith wraps an already-open keyring. It exists so tests can
// substitute an in-memory keyring.
func NewRingStoreWith(ring keyring.Keyring, containerName string) *RingStore {
	if containerName == "" {
		containerName = ContainerName
	}
	return &RingStore{ring: ring, item: containerName}
}

// Name returns the backend name.
func (s *RingStore) Name() string { return "native" }

// GetKeypair returns the cached keypair, loading it from the container or
// creating and persisting a fresh one on first use.
func (s *RingStore) GetKeypair() (*crypto.Keypair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kp != nil {
		return s.kp, nil
	}

	item, err := s.ring.Get(s.item)
	switch {
	case err == nil:
		kp, err := crypto.UnmarshalKeypair(item.Data)
		if err != nil {
			return nil, &StoreError{Path: s.item, Err: err}
		}
		s.kp = kp
		return kp, nil
	case errors.Is(err, keyring.ErrKeyNotFound):
		// First use: create below.
	default:
		return nil, &StoreError{Path: s.item, Err: err}
	}

	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, &StoreError{Path: s.item, Err: err}
	}

	// The document buffer is handed to the keyring implementation, which
	// may retain it; it is not wiped here.
	doc, err := crypto.MarshalKeypair(kp, true)
	if err != nil {
		return nil, &StoreError{Path: s.item, Err: err}
	}

	err = s.ring.Set(keyring.Item{
		Key:         s.item,
		Data:        doc,
		Label:       "cardkeep data protection keypair",
		Description: "RSA key-transport keypair for locally cached data",
	})
	if err != nil {
		return nil, &StoreError{Path: s.item, Err: err}
	}

	s.kp = kp
	return kp, nil
}
