package protect

// config holds the configurable settings for a Protector.
type config struct {
	dataDir       string
	containerName string
	passphrase    []byte
	fileStore     bool
}

// Option is a functional option for configuring a Protector.
type Option func(*config)

// WithDataDir overrides the directory that holds the key file when the
// file-backed store is in use. The default is a "cardkeep" directory under
// the per-user configuration directory.
func WithDataDir(dir string) Option {
	return func(c *config) {
		c.dataDir = dir
	}
}

// WithContainerName overrides the item name used inside the native secure
// key container. The default is "CardKeepDataProtection". Distinct names
// yield distinct keypairs, so blobs protected under one name cannot be
// unprotected under another.
func WithContainerName(name string) Option {
	return func(c *config) {
		c.containerName = name
	}
}

// WithFileStore forces the file-backed key store even when a native secure
// key container is available. Useful for headless hosts where the container
// would prompt interactively.
func WithFileStore() Option {
	return func(c *config) {
		c.fileStore = true
	}
}

// WithKeyFilePassphrase seals the file-backed key file under the given
// passphrase. It only affects the file store; the native container applies
// its own protection. A Protector opened without the passphrase used at
// creation cannot load the keypair.
func WithKeyFilePassphrase(passphrase []byte) Option {
	return func(c *config) {
		c.passphrase = passphrase
	}
}
