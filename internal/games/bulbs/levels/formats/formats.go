// Package formats decodes level files. Each format yields the same Level
// value: metadata plus the raw grid text, which the core parser validates.
package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoGrid is returned when a file carries metadata but no grid rows.
var ErrNoGrid = errors.New("no grid rows")

// Level is a decoded level file.
type Level struct {
	ID       string
	Name     string
	Author   string
	Grid     []byte
	Metadata map[string]string
}

// FormatExtensions returns the supported file extensions, lower case.
func FormatExtensions() []string {
	return []string{".skb", ".yaml", ".yml"}
}

// Supported reports whether ext (with the dot, any case) is a level format.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range FormatExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".skb":
		return ParseSKB(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
