package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ComboRules is the on-disk form of the combo lunch rules. Zero fields fall
// back to the built-in defaults of the service that loads them.
type ComboRules struct {
	Discount *int     `yaml:"discount"`
	Required []string `yaml:"required"`
	Auto     []string `yaml:"auto"`
}

// LoadComboRules reads a YAML rules file. An empty path yields empty rules.
func LoadComboRules(path string) (ComboRules, error) {
	var rules ComboRules
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read combo rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse combo rules: %w", err)
	}
	if rules.Discount != nil && *rules.Discount < 0 {
		return rules, fmt.Errorf("combo discount must not be negative, got %d", *rules.Discount)
	}
	return rules, nil
}
