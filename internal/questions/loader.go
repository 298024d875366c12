// Package questions provides the personality question source document.
// The default document is embedded at compile time; an alternate document
// can be loaded from disk for deployments that customize the questionnaire.
package questions

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed personality.tex
var defaultDocument string

// Default returns the embedded question source document.
func Default() string {
	return defaultDocument
}

// Load reads a question source document from the given path.
// An empty path returns the embedded default.
func Load(path string) (string, error) {
	if path == "" {
		return defaultDocument, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read question document %s: %w", path, err)
	}
	return string(data), nil
}
