// Command protectctl protects and unprotects local data files from the
// command line using the installation keypair. It is a thin wrapper over the
// protect package, mainly useful for inspecting blobs and for scripting
// around cache files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	protect "github.com/cardkeep/protect-go"
)

var (
	dataDir    string
	fileStore  bool
	saltString string
)

var rootCmd = &cobra.Command{
	Use:   "protectctl",
	Short: "Protect and unprotect locally cached data files",
	Long: `protectctl encrypts and decrypts local data files under this
installation's keypair. Blobs are bound to the machine and user account that
created them; they cannot be moved to another installation.

Commands:
  protect     Encrypt a file into a protected blob
  unprotect   Decrypt a protected blob back into plaintext
  key         Inspect the installation keypair`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "key file directory (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVar(&fileStore, "file-store", false, "force the file-backed key store")
	rootCmd.PersistentFlags().StringVar(&saltString, "salt", "", "salt bytes binding the blob to caller context")
}

// newProtector builds a Protector from the persistent flags, honoring
// PROTECTCTL_DATA_DIR and PROTECTCTL_KEY_PASSPHRASE from the environment.
func newProtector() (*protect.Protector, error) {
	var opts []protect.Option
	if dataDir == "" {
		dataDir = os.Getenv("PROTECTCTL_DATA_DIR")
	}
	if dataDir != "" {
		opts = append(opts, protect.WithDataDir(dataDir))
	}
	if fileStore {
		opts = append(opts, protect.WithFileStore())
	}
	if pass := os.Getenv("PROTECTCTL_KEY_PASSPHRASE"); pass != "" {
		opts = append(opts, protect.WithKeyFilePassphrase([]byte(pass)))
	}
	return protect.New(opts...)
}

func salt() []byte {
	if saltString == "" {
		return nil
	}
	return []byte(saltString)
}

func main() {
	// Optional; a missing .env is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
