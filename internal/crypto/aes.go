package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// encryptCBC encrypts plaintext with AES-128 in CBC mode using PKCS#7
// padding. key and iv must be 16 bytes. The padded working copy of the
// plaintext is wiped before returning.
func encryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("invalid key size: got %d, want %d", len(key), SymKeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("invalid IV size: got %d, want %d", len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	defer Wipe(padded)

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

// decryptCBC decrypts body with AES-128-CBC and strips PKCS#7 padding.
// Any cipher-level failure (wrong key or IV size, body not a whole number
// of blocks, invalid padding) returns nil instead of an error: Unprotect
// defers the accept/reject decision to the digest check so that padding
// failures are indistinguishable from digest failures.
func decryptCBC(key, iv, body []byte) []byte {
	if len(key) != SymKeySize || len(iv) != IVSize {
		return nil
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil
	}

	if len(body) == 0 || len(body)%block.BlockSize() != 0 {
		return nil
	}

	out := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, body)

	plain, ok := pkcs7Unpad(out, block.BlockSize())
	if !ok {
		Wipe(out)
		return nil
	}
	return plain
}

// pkcs7Pad returns a padded copy of data. The padding length is always in
// [1, blockSize], so an empty payload pads to one full block.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// pkcs7Unpad strips padding in place and returns the shortened slice.
// Returns false for an empty buffer, an out-of-range padding byte, or
// inconsistent padding bytes.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	for i := len(data) - n; i < len(data); i++ {
		if data[i] != byte(n) {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
