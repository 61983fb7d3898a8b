// Package protect provides client-side protection for locally cached
// application data (card catalogs, language mappings) so that it cannot be
// trivially read or tampered with outside the owning user account, without
// depending on an OS-specific secret-management API at the call site.
//
// Each installation owns a single long-lived RSA keypair, resolved from the
// platform-native secure key container when one is available and from a JSON
// key file in the per-user application-data directory otherwise. Every
// Protect call draws a fresh AES-128 key and IV, encrypts the payload in CBC
// mode, and seals key, IV and a SHA-256 digest of the plaintext into a
// fixed-layout envelope that is RSA-OAEP encrypted at the front of the blob.
//
// Basic usage:
//
//	p, err := protect.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blob, err := p.Protect(catalogJSON, []byte(accountID))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, with the same salt:
//	catalogJSON, err = p.Unprotect(blob, []byte(accountID))
//	if errors.Is(err, protect.ErrInvalidCiphertext) {
//	    // The blob was tampered with, or the salt is wrong. Re-fetch.
//	}
//
// The optional salt binds a blob to caller-chosen context bytes (an account
// identifier, for example): unprotecting with different salt bytes fails.
// The salt is a confounder, not a password; it adds no key stretching.
//
// Unprotect reports every failure (truncation, tampering, wrong salt) as
// the single [ErrInvalidCiphertext]: reporting which internal check failed
// would hand an attacker a decryption oracle. Keys are strictly
// per-installation; blobs do not roam between machines.
package protect
