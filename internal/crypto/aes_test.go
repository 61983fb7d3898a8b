package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEncryptDecryptCBC_RoundTrip(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, SymKeySize)
	iv := randomBytes(t, IVSize)

	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"one byte", 1},
		{"block minus one", 15},
		{"exactly one block", 16},
		{"block plus one", 17},
		{"several blocks", 128},
		{"large", 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintext := randomBytes(t, tt.size)

			body, err := encryptCBC(key, iv, plaintext)
			if err != nil {
				t.Fatalf("encryptCBC() error = %v", err)
			}
			if len(body)%16 != 0 {
				t.Errorf("body length %d is not block-aligned", len(body))
			}
			// Padding always adds at least one byte.
			if len(body) <= tt.size {
				t.Errorf("body length %d, want > %d", len(body), tt.size)
			}

			got := decryptCBC(key, iv, body)
			if !bytes.Equal(got, plaintext) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(plaintext))
			}
		})
	}
}

func TestEncryptCBC_BadSizes(t *testing.T) {
	t.Parallel()
	if _, err := encryptCBC(make([]byte, 8), make([]byte, IVSize), []byte("x")); err == nil {
		t.Error("expected error for short key")
	}
	if _, err := encryptCBC(make([]byte, SymKeySize), make([]byte, 8), []byte("x")); err == nil {
		t.Error("expected error for short IV")
	}
}

func TestDecryptCBC_CipherLevelFailures(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, SymKeySize)
	iv := randomBytes(t, IVSize)

	body, err := encryptCBC(key, iv, []byte("some cached payload"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		key  []byte
		iv   []byte
		body []byte
	}{
		{"empty body", key, iv, nil},
		{"non-block body", key, iv, body[:len(body)-3]},
		{"short key", key[:8], iv, body},
		{"short iv", key, iv[:8], body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// decryptCBC must report failure as nil output, never panic:
			// Unprotect defers the final decision to the digest check.
			if got := decryptCBC(tt.key, tt.iv, tt.body); got != nil {
				t.Errorf("decryptCBC() = %d bytes, want nil", len(got))
			}
		})
	}
}

func TestPKCS7Unpad_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"zero padding byte", append(bytes.Repeat([]byte{1}, 15), 0)},
		{"padding exceeds block", append(bytes.Repeat([]byte{1}, 15), 17)},
		{"padding exceeds data", []byte{5, 5, 5}},
		{"inconsistent padding", append(bytes.Repeat([]byte{2}, 14), 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := pkcs7Unpad(tt.data, 16); ok {
				t.Error("pkcs7Unpad accepted invalid padding")
			}
		})
	}
}

func TestPKCS7Pad_EmptyPayloadPadsFullBlock(t *testing.T) {
	t.Parallel()
	padded := pkcs7Pad(nil, 16)
	if len(padded) != 16 {
		t.Fatalf("padded length = %d, want 16", len(padded))
	}
	for i, b := range padded {
		if b != 16 {
			t.Fatalf("padded[%d] = %d, want 16", i, b)
		}
	}
}
