package protect

import (
	"github.com/cardkeep/protect-go/internal/crypto"
	"github.com/cardkeep/protect-go/internal/keystore"
)

// Protector protects and unprotects locally cached data under the
// installation keypair. It is safe for concurrent use.
type Protector struct {
	store keystore.Store
}

// New creates a Protector, resolving the installation key store. The native
// secure key container is preferred when the platform offers one; otherwise
// the file-backed store is used. The keypair itself is created lazily on the
// first Protect or Unprotect call.
func New(opts ...Option) (*Protector, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	store, err := keystore.Open(keystore.Config{
		DataDir:       cfg.dataDir,
		ContainerName: cfg.containerName,
		Passphrase:    cfg.passphrase,
		DisableNative: cfg.fileStore,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Protector{store: store}, nil
}

// Protect encrypts data under the installation keypair and returns the
// protected blob. The optional salt binds the blob to caller context; pass
// nil for none. Data must be non-nil (empty is allowed).
func (p *Protector) Protect(data, salt []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrInvalidInput
	}

	kp, err := p.store.GetKeypair()
	if err != nil {
		return nil, wrapError(err)
	}

	blob, err := crypto.Protect(kp, data, salt)
	if err != nil {
		return nil, wrapError(err)
	}
	return blob, nil
}

// Unprotect decrypts a blob produced by Protect on this installation with
// the same salt. Any tampering, truncation or salt mismatch is reported as
// ErrInvalidCiphertext.
func (p *Protector) Unprotect(blob, salt []byte) ([]byte, error) {
	if blob == nil {
		return nil, ErrInvalidInput
	}

	kp, err := p.store.GetKeypair()
	if err != nil {
		return nil, wrapError(err)
	}

	data, err := crypto.Unprotect(kp, blob, salt)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// ExportPublicKey returns the public half of the installation keypair as a
// JSON key document. Private components are never included.
func (p *Protector) ExportPublicKey() ([]byte, error) {
	kp, err := p.store.GetKeypair()
	if err != nil {
		return nil, wrapError(err)
	}

	doc, err := crypto.MarshalKeypair(kp, false)
	if err != nil {
		return nil, wrapError(err)
	}
	return doc, nil
}

// Backend reports which key store backend this Protector resolved, either
// "native" or "file".
func (p *Protector) Backend() string {
	return p.store.Name()
}
