package main

import (
	"os"

	"github.com/spf13/cobra"
)

var protectOut string

var protectCmd = &cobra.Command{
	Use:   "protect <file>",
	Short: "Encrypt a file into a protected blob",
	Long: `Encrypt a file under the installation keypair.

Examples:
  # Protect a cached catalog, bound to an account identifier
  protectctl --salt account-7 protect catalog.json --out catalog.bin

  # Write the blob to stdout
  protectctl protect catalog.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runProtect(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(protectCmd)
	protectCmd.Flags().StringVarP(&protectOut, "out", "o", "", "output path (default: stdout)")
}

func runProtect(path string) error {
	p, err := newProtector()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if protectOut != "" {
		return p.ProtectToFile(protectOut, data, salt())
	}

	blob, err := p.Protect(data, salt())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(blob)
	return err
}
