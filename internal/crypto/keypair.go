package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
)

// randReader is the random source used for key generation. It can be
// overridden for testing.
var randReader io.Reader = rand.Reader

// Keypair holds the installation's RSA key-transport keypair. Private is nil
// for a public-only key, which can Protect but not Unprotect.
//
// An *rsa key is safe for concurrent read-only use, so one Keypair serves
// concurrent Protect and Unprotect calls without additional locking.
type Keypair struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}

// GenerateKeypair creates a new keypair of the fixed 1536-bit modulus size.
func GenerateKeypair() (*Keypair, error) {
	priv, err := rsa.GenerateKey(randReader, RSAKeyBits)
	if err != nil {
		return nil, err
	}
	return &Keypair{Public: &priv.PublicKey, Private: priv}, nil
}

// keyDocument is the persisted JSON form of a keypair. Every field is
// standard base64 of a big-endian unsigned integer; the private fields are
// omitted for a public-only key.
type keyDocument struct {
	Modulus  string `json:"Modulus"`
	Exponent string `json:"Exponent"`
	P        string `json:"P,omitempty"`
	Q        string `json:"Q,omitempty"`
	DP       string `json:"DP,omitempty"`
	DQ       string `json:"DQ,omitempty"`
	InverseQ string `json:"InverseQ,omitempty"`
	D        string `json:"D,omitempty"`
}

// MarshalKeypair serializes a keypair to its JSON key document. With
// includePrivate false (or a public-only keypair) the document carries only
// the modulus and public exponent.
func MarshalKeypair(kp *Keypair, includePrivate bool) ([]byte, error) {
	if kp == nil || kp.Public == nil {
		return nil, ErrMalformedKeyDocument
	}

	doc := keyDocument{
		Modulus:  encodeBigInt(kp.Public.N),
		Exponent: encodeBigInt(big.NewInt(int64(kp.Public.E))),
	}

	if includePrivate && kp.Private != nil {
		priv := kp.Private
		doc.P = encodeBigInt(priv.Primes[0])
		doc.Q = encodeBigInt(priv.Primes[1])
		doc.DP = encodeBigInt(priv.Precomputed.Dp)
		doc.DQ = encodeBigInt(priv.Precomputed.Dq)
		doc.InverseQ = encodeBigInt(priv.Precomputed.Qinv)
		doc.D = encodeBigInt(priv.D)
	}

	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalKeypair parses a JSON key document back into a keypair. A
// document without private fields yields a public-only keypair. Structurally
// invalid documents fail with ErrMalformedKeyDocument; the caller decides
// how to surface that (a corrupt persisted key is never silently replaced,
// since regenerating would orphan all previously protected data).
func UnmarshalKeypair(data []byte) (*Keypair, error) {
	var doc keyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKeyDocument, err)
	}

	if doc.Modulus == "" || doc.Exponent == "" {
		return nil, fmt.Errorf("%w: missing modulus or exponent", ErrMalformedKeyDocument)
	}

	n, err := decodeBigInt(doc.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus: %v", ErrMalformedKeyDocument, err)
	}
	e, err := decodeBigInt(doc.Exponent)
	if err != nil {
		return nil, fmt.Errorf("%w: exponent: %v", ErrMalformedKeyDocument, err)
	}
	if !e.IsInt64() || e.Int64() < 3 {
		return nil, fmt.Errorf("%w: unusable public exponent", ErrMalformedKeyDocument)
	}

	pub := &rsa.PublicKey{N: n, E: int(e.Int64())}

	if doc.D == "" {
		return &Keypair{Public: pub}, nil
	}

	d, err := decodeBigInt(doc.D)
	if err != nil {
		return nil, fmt.Errorf("%w: private exponent: %v", ErrMalformedKeyDocument, err)
	}
	p, err := decodeBigInt(doc.P)
	if err != nil {
		return nil, fmt.Errorf("%w: prime P: %v", ErrMalformedKeyDocument, err)
	}
	q, err := decodeBigInt(doc.Q)
	if err != nil {
		return nil, fmt.Errorf("%w: prime Q: %v", ErrMalformedKeyDocument, err)
	}

	priv := &rsa.PrivateKey{
		PublicKey: *pub,
		D:         d,
		Primes:    []*big.Int{p, q},
	}
	// The CRT values are always recomputed from the primes.
	priv.Precompute()
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKeyDocument, err)
	}

	// Any CRT fields the document carries must agree with the
	// recomputation; a mismatch means the document is corrupt.
	crtFields := []struct {
		name  string
		value string
		want  *big.Int
	}{
		{"DP", doc.DP, priv.Precomputed.Dp},
		{"DQ", doc.DQ, priv.Precomputed.Dq},
		{"InverseQ", doc.InverseQ, priv.Precomputed.Qinv},
	}
	for _, f := range crtFields {
		if f.value == "" {
			continue
		}
		got, err := decodeBigInt(f.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedKeyDocument, f.name, err)
		}
		if got.Cmp(f.want) != 0 {
			return nil, fmt.Errorf("%w: inconsistent CRT parameter %s", ErrMalformedKeyDocument, f.name)
		}
	}

	return &Keypair{Public: &priv.PublicKey, Private: priv}, nil
}

// encodeBigInt encodes a big-endian unsigned integer as standard base64.
func encodeBigInt(i *big.Int) string {
	return base64.StdEncoding.EncodeToString(i.Bytes())
}

// decodeBigInt decodes a standard-base64 big-endian unsigned integer.
func decodeBigInt(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty integer field")
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(raw), nil
}
