package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Inspect the installation keypair",
}

var keyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the public key as a JSON key document",
	Long: `Print the public half of the installation keypair. Private
components are never exported.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runKeyExport())
	},
}

var keyInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show which key store backend is in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runKeyInfo())
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyExportCmd)
	keyCmd.AddCommand(keyInfoCmd)
}

func runKeyExport() error {
	p, err := newProtector()
	if err != nil {
		return err
	}

	doc, err := p.ExportPublicKey()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(doc, '\n'))
	return err
}

func runKeyInfo() error {
	p, err := newProtector()
	if err != nil {
		return err
	}
	fmt.Printf("backend: %s\n", p.Backend())
	return nil
}
