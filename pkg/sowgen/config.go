package sowgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/sow"
)

// Config holds deployment-level overrides layered over the built-in
// catalogs. Place a sowgen.yaml next to the binary (or pass --config)
// and load it with LoadConfig.
type Config struct {
	// CustomTemplates maps section ids to replacement body text,
	// consulted before the built-in section catalog. Unknown ids are
	// inert.
	CustomTemplates map[string]string `yaml:"custom_templates"`

	// VerticalOverrides replaces the site-requirement notes for a
	// vertical code.
	VerticalOverrides map[string]sow.VerticalEntry `yaml:"vertical_overrides"`

	// Variables pre-seeds template variable values; user and BOM
	// auto-fill values still win because merging is fill-empty-only.
	Variables map[string]string `yaml:"variables"`
}

// LoadConfig reads and parses a yaml config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
