package keystore

import (
	"errors"
	"testing"
)

var errTest = errors.New("test failure")

func TestOpen_DisableNativeSelectsFileStore(t *testing.T) {
	t.Parallel()
	store, err := Open(Config{DataDir: t.TempDir(), DisableNative: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if store.Name() != "file" {
		t.Errorf("Name() = %q, want %q", store.Name(), "file")
	}
	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Open() returned %T, want *FileStore", store)
	}
}

func TestOpen_AlwaysResolvesABackend(t *testing.T) {
	t.Parallel()
	// Whatever the platform offers, Open must settle on some backend:
	// PlatformUnsupported is recovered internally, never surfaced.
	store, err := Open(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if store.Name() != "native" && store.Name() != "file" {
		t.Errorf("Name() = %q, want native or file", store.Name())
	}
}

func TestStoreError_Message(t *testing.T) {
	t.Parallel()
	err := &StoreError{Path: "/data/keypair.json", Err: errTest}
	want := "key store /data/keypair.json: test failure"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Unwrap() != errTest {
		t.Error("Unwrap() did not return the underlying error")
	}
}
