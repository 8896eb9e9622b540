// Package export writes conversion results to files and the clipboard.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/skip2/go-qrcode"
)

// ErrNoOutput is returned when there is nothing to export.
var ErrNoOutput = errors.New("nothing to export")

const (
	DefaultExt   = ".txt"
	DefaultQRExt = ".png"
	qrSize       = 512
)

var (
	clipboardWriteAll = clipboard.WriteAll
	clipboardReadAll  = clipboard.ReadAll
)

// WithDefaultExt appends ext when path has no extension.
func WithDefaultExt(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

// Save writes result verbatim to path, adding a .txt extension when the
// path has none. Returns the path actually written.
func Save(path, result string) (string, error) {
	if result == "" {
		return "", ErrNoOutput
	}
	if path == "" {
		return "", errors.New("no output path given")
	}
	path = WithDefaultExt(path, DefaultExt)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(result), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// SaveQR renders result as a QR code PNG, adding a .png extension when the
// path has none.
func SaveQR(path, result string) (string, error) {
	if result == "" {
		return "", ErrNoOutput
	}
	path = WithDefaultExt(path, DefaultQRExt)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := qrcode.WriteFile(result, qrcode.Medium, qrSize, path); err != nil {
		return "", fmt.Errorf("generating qr code: %w", err)
	}
	return path, nil
}

// Copy places result on the system clipboard.
func Copy(result string) error {
	if result == "" {
		return ErrNoOutput
	}
	if err := clipboardWriteAll(result); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// Paste reads the system clipboard.
func Paste() (string, error) {
	text, err := clipboardReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}
