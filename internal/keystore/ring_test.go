package keystore

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
)

func TestRingStore_FirstUseCreatesItem(t *testing.T) {
	t.Parallel()
	ring := keyring.NewArrayKeyring(nil)
	store := NewRingStoreWith(ring, "")

	if store.Name() != "native" {
		t.Errorf("Name() = %q, want %q", store.Name(), "native")
	}

	kp, err := store.GetKeypair()
	if err != nil {
		t.Fatalf("GetKeypair() error = %v", err)
	}
	if kp.Private == nil {
		t.Fatal("first-use keypair has no private component")
	}

	keys, err := ring.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != ContainerName {
		t.Errorf("container keys = %v, want [%s]", keys, ContainerName)
	}
}

func TestRingStore_LoadsExistingItem(t *testing.T) {
	t.Parallel()
	ring := keyring.NewArrayKeyring(nil)

	first := NewRingStoreWith(ring, "")
	kp1, err := first.GetKeypair()
	if err != nil {
		t.Fatal(err)
	}

	second := NewRingStoreWith(ring, "")
	kp2, err := second.GetKeypair()
	if err != nil {
		t.Fatal(err)
	}

	if kp1.Public.N.Cmp(kp2.Public.N) != 0 {
		t.Error("second store produced a different keypair from the same container")
	}
}

func TestRingStore_CustomContainerName(t *testing.T) {
	t.Parallel()
	ring := keyring.NewArrayKeyring(nil)
	store := NewRingStoreWith(ring, "TestContainer")

	if _, err := store.GetKeypair(); err != nil {
		t.Fatal(err)
	}

	if _, err := ring.Get("TestContainer"); err != nil {
		t.Errorf("item not stored under custom name: %v", err)
	}
}

func TestRingStore_CorruptItemIsFatal(t *testing.T) {
	t.Parallel()
	ring := keyring.NewArrayKeyring([]keyring.Item{
		{Key: ContainerName, Data: []byte("not a key document")},
	})
	store := NewRingStoreWith(ring, "")

	_, err := store.GetKeypair()
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("GetKeypair() error = %v, want *StoreError", err)
	}
}

func TestRingStore_GetKeypairIsCached(t *testing.T) {
	t.Parallel()
	ring := keyring.NewArrayKeyring(nil)
	store := NewRingStoreWith(ring, "")

	kp1, err := store.GetKeypair()
	if err != nil {
		t.Fatal(err)
	}

	// Clearing the container must not matter once the keypair is cached.
	if err := ring.Remove(ContainerName); err != nil {
		t.Fatal(err)
	}

	kp2, err := store.GetKeypair()
	if err != nil {
		t.Fatal(err)
	}
	if kp1 != kp2 {
		t.Error("cached GetKeypair returned a different pointer")
	}
}
