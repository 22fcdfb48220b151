package academic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Groups []AgeGroup `yaml:"groups"`
}

// LoadTable reads an age-group table from a YAML file:
//
//	groups:
//	  - label: "3-4 years"
//	    unit_minutes: 15
//	    description: "..."
//	    features: ["..."]
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read age group table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parses YAML table data. See LoadTable for the layout.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse age group table: %w", err)
	}
	return NewTable(f.Groups)
}
