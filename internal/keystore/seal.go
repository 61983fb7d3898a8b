package keystore

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/cardkeep/protect-go/internal/crypto"
)

// scrypt parameters for sealing the key file. Stored alongside the box so
// they can be raised later without breaking existing files.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1

	sealSaltSize  = 32
	sealNonceSize = 24
	sealKeySize   = 32
)

// sealedDocument is the on-disk container for a passphrase-sealed key
// document: scrypt key derivation plus a secretbox over the JSON keypair.
type sealedDocument struct {
	KDF   string `json:"kdf"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	Salt  string `json:"salt"`
	Nonce string `json:"nonce"`
	Box   string `json:"box"`
}

// isSealed reports whether raw key file contents are a sealed container
// rather than a plain keypair document.
func isSealed(data []byte) bool {
	var doc sealedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	return doc.Box != ""
}

// sealDocument seals a keypair document under a passphrase.
func sealDocument(doc, passphrase []byte) ([]byte, error) {
	salt := make([]byte, sealSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	derived, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, sealKeySize)
	if err != nil {
		return nil, err
	}
	var key [sealKeySize]byte
	copy(key[:], derived)
	crypto.Wipe(derived)
	defer crypto.Wipe(key[:])

	var nonce [sealNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}

	box := secretbox.Seal(nil, doc, &nonce, &key)

	return json.MarshalIndent(sealedDocument{
		KDF:   "scrypt",
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
		Salt:  base64.StdEncoding.EncodeToString(salt),
		Nonce: base64.StdEncoding.EncodeToString(nonce[:]),
		Box:   base64.StdEncoding.EncodeToString(box),
	}, "", "  ")
}

// openDocument unseals a sealed container. A wrong passphrase and a corrupt
// box are indistinguishable; both are fatal to the caller.
func openDocument(data, passphrase []byte) ([]byte, error) {
	var doc sealedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse sealed key file: %w", err)
	}
	if doc.KDF != "scrypt" {
		return nil, fmt.Errorf("unsupported key file KDF %q", doc.KDF)
	}

	salt, err := base64.StdEncoding.DecodeString(doc.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	nonceBytes, err := base64.StdEncoding.DecodeString(doc.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	if len(nonceBytes) != sealNonceSize {
		return nil, fmt.Errorf("nonce size %d, want %d", len(nonceBytes), sealNonceSize)
	}
	box, err := base64.StdEncoding.DecodeString(doc.Box)
	if err != nil {
		return nil, fmt.Errorf("decode box: %w", err)
	}

	derived, err := scrypt.Key(passphrase, salt, doc.N, doc.R, doc.P, sealKeySize)
	if err != nil {
		return nil, err
	}
	var key [sealKeySize]byte
	copy(key[:], derived)
	crypto.Wipe(derived)
	defer crypto.Wipe(key[:])

	var nonce [sealNonceSize]byte
	copy(nonce[:], nonceBytes)

	out, ok := secretbox.Open(nil, box, &nonce, &key)
	if !ok {
		return nil, fmt.Errorf("wrong passphrase or corrupt key file")
	}
	return out, nil
}
