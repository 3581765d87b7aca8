package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk shape of a .yaml level.
//
//	id: lvl05
//	name: Tower
//	grid: |
//	  #####
//	  #a.z#
//	  #####
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Author   string            `yaml:"author,omitempty"`
	Grid     string            `yaml:"grid"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML decodes a .yaml level.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Grid) == "" {
		return Level{}, fmt.Errorf("yaml: %w", ErrNoGrid)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Author:   yl.Author,
		Grid:     []byte(yl.Grid),
		Metadata: yl.Metadata,
	}, nil
}
