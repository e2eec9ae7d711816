package lamp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presetsFile mirrors the YAML preset layout.
type presetsFile struct {
	Filaments []Filament `yaml:"filaments"`
}

// LoadPresets reads filament definitions from a YAML file:
//
//	filaments:
//	  - name: GE47
//	    length: 0.02314
//	    radius: 1.091e-5
//	    emissivity: 0.28
func LoadPresets(path string) ([]Filament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lamp: read presets: %w", err)
	}

	return ParsePresets(data)
}

// ParsePresets parses YAML filament definitions and validates each
// entry.
func ParsePresets(data []byte) ([]Filament, error) {
	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("lamp: parse presets: %w", err)
	}

	if len(file.Filaments) == 0 {
		return nil, ErrNoPresets
	}

	for i, f := range file.Filaments {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i+1, f.Name, err)
		}
	}

	return file.Filaments, nil
}
