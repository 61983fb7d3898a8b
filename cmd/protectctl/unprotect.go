package main

import (
	"os"

	"github.com/spf13/cobra"
)

var unprotectOut string

var unprotectCmd = &cobra.Command{
	Use:   "unprotect <file>",
	Short: "Decrypt a protected blob back into plaintext",
	Long: `Decrypt a blob produced by protect on this installation. The same
salt used at protection time must be supplied.

Examples:
  protectctl --salt account-7 unprotect catalog.bin --out catalog.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runUnprotect(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(unprotectCmd)
	unprotectCmd.Flags().StringVarP(&unprotectOut, "out", "o", "", "output path (default: stdout)")
}

func runUnprotect(path string) error {
	p, err := newProtector()
	if err != nil {
		return err
	}

	data, err := p.UnprotectFromFile(path, salt())
	if err != nil {
		return err
	}

	if unprotectOut != "" {
		return os.WriteFile(unprotectOut, data, 0600)
	}
	_, err = os.Stdout.Write(data)
	return err
}
