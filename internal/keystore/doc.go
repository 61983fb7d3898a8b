// Package keystore resolves the installation's long-lived key-transport
// keypair. It supports two backends that can be selected based on platform
// capability.
//
// # Backends
//
// The package implements two key store backends:
//
//   - [RingStore]: Stores the keypair document in the platform-native secure
//     key container (macOS Keychain, Windows Credential Manager, Secret
//     Service, KWallet, pass) under a fixed container name. Preferred when
//     the platform offers one.
//
//   - [FileStore]: Stores the keypair as a JSON document in a key file under
//     the per-user application-data directory. Used when no native container
//     is available. The file holds private key material; the directory is
//     created 0700 and the file 0600, but no further ACL hardening is
//     applied — treat the file as a secret artifact.
//
// Backend selection happens once, at [Open] time, by probing platform
// capability; "not supported" is never discovered by catching failures on
// the hot path.
//
// # Lifecycle
//
// GetKeypair is idempotent. The first call loads the persisted keypair, or
// generates and persists a fresh one when none exists yet. The result is
// cached for the remainder of the process. Persisted key material that is
// present but malformed is a fatal [*StoreError]: regenerating over it would
// silently orphan every previously protected blob, so the caller must decide.
//
// # Thread Safety
//
// All store types are safe for concurrent use. Concurrent first calls to
// GetKeypair are serialized so they cannot race to create two keypairs or
// interleave writes to the key file.
package keystore
