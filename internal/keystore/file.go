package keystore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cardkeep/protect-go/internal/crypto"
)

// FileStore keeps the keypair as a JSON document in a key file under the
// per-user application-data directory. The directory and file are created on
// first use (0700/0600). The file contains private key material and must be
// treated as a secret artifact.
type FileStore struct {
	path       string
	passphrase []byte

	mu sync.Mutex
	kp *crypto.Keypair
}

// NewFileStore builds a file-backed store rooted at cfg.DataDir, defaulting
// to os.UserConfigDir()/cardkeep. Nothing touches the filesystem until the
// first GetKeypair call.
func NewFileStore(cfg Config) (*FileStore, error) {
	dir := cfg.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, DefaultDirName)
	}
	return &FileStore{
		path:       filepath.Join(dir, KeyFileName),
		passphrase: cfg.Passphrase,
	}, nil
}

// Name returns the backend name.
func (s *FileStore) Name() string { return "file" }

// Path returns the key file location.
func (s *FileStore) Path() string { return s.path }

// GetKeypair returns the cached keypair, loading it from the key file or
// creating and persisting a fresh one on first run. A key file that exists
// but cannot be parsed is a fatal *StoreError; it is never overwritten.
func (s *FileStore) GetKeypair() (*crypto.Keypair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kp != nil {
		return s.kp, nil
	}

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		kp, err := s.parse(data)
		if err != nil {
			return nil, &StoreError{Path: s.path, Err: err}
		}
		s.kp = kp
		return kp, nil
	case os.IsNotExist(err):
		// First run: create below.
	default:
		return nil, &StoreError{Path: s.path, Err: err}
	}

	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, &StoreError{Path: s.path, Err: err}
	}

	doc, err := crypto.MarshalKeypair(kp, true)
	if err != nil {
		return nil, &StoreError{Path: s.path, Err: err}
	}
	defer crypto.Wipe(doc)

	out := doc
	if len(s.passphrase) > 0 {
		out, err = sealDocument(doc, s.passphrase)
		if err != nil {
			return nil, &StoreError{Path: s.path, Err: err}
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return nil, &StoreError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, out, 0600); err != nil {
		return nil, &StoreError{Path: s.path, Err: err}
	}

	s.kp = kp
	return kp, nil
}

// parse turns raw key file contents into a keypair, unsealing first when the
// file is a passphrase-sealed container.
func (s *FileStore) parse(data []byte) (*crypto.Keypair, error) {
	if isSealed(data) {
		if len(s.passphrase) == 0 {
			return nil, fmt.Errorf("key file is passphrase-sealed and no passphrase was provided")
		}
		doc, err := openDocument(data, s.passphrase)
		if err != nil {
			return nil, err
		}
		defer crypto.Wipe(doc)
		return crypto.UnmarshalKeypair(doc)
	}
	return crypto.UnmarshalKeypair(data)
}
