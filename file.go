package protect

import (
	"fmt"
	"os"
)

// ProtectToFile protects data and writes the blob to path with 0600
// permissions, replacing any existing file.
func (p *Protector) ProtectToFile(path string, data, salt []byte) error {
	blob, err := p.Protect(data, salt)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, blob, 0600); err != nil {
		return fmt.Errorf("failed to write protected file: %w", err)
	}
	return nil
}

// UnprotectFromFile reads a blob written by ProtectToFile and unprotects it
// with the same salt.
func (p *Protector) UnprotectFromFile(path string, salt []byte) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read protected file: %w", err)
	}
	return p.Unprotect(blob, salt)
}
