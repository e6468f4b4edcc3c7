package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TagRules lists extra tag patterns appended to the normalizer's built-in
// ones. Projects with exotic placeholder syntaxes ship one of these as a
// small TOML file next to the bilingual export.
type TagRules struct {
	Patterns []string `toml:"patterns"`
}

// LoadTagRules reads a TOML tag-rule file.
func LoadTagRules(path string) (*TagRules, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("tag rules file not found: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag rules file: %w", err)
	}

	rules := &TagRules{}
	if err := toml.Unmarshal(content, rules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tag rules: %w", err)
	}

	for i, p := range rules.Patterns {
		if p == "" {
			return nil, fmt.Errorf("tag rules file has an empty pattern at index %d", i)
		}
	}
	return rules, nil
}
