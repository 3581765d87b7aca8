package formats

import (
	"bytes"
	"fmt"
	"strings"
)

// ParseSKB decodes the plain text format: optional header lines of the
// form "; key: value" followed by the grid rows. Known keys are id, name
// and author; anything else lands in Metadata. The header ends at the
// first line not starting with ';'.
func ParseSKB(data []byte) (Level, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	var lvl Level
	for len(data) > 0 && data[0] == ';' {
		line := data
		rest := []byte(nil)
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, rest = data[:i], data[i+1:]
		}
		data = rest

		key, value, ok := strings.Cut(strings.TrimSpace(string(line[1:])), ":")
		if !ok {
			continue // plain comment
		}
		lvl.set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Level{}, fmt.Errorf("skb: %w", ErrNoGrid)
	}
	lvl.Grid = data
	return lvl, nil
}

func (l *Level) set(key, value string) {
	switch strings.ToLower(key) {
	case "id":
		l.ID = value
	case "name":
		l.Name = value
	case "author":
		l.Author = value
	default:
		if l.Metadata == nil {
			l.Metadata = make(map[string]string)
		}
		l.Metadata[key] = value
	}
}
