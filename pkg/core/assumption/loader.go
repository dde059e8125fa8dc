package assumption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"proforma/pkg/core/utils"

	"gopkg.in/yaml.v2"
)

// LoadFile reads an assumption override file and merges it over the defaults
// for the given horizon. Format is chosen by extension: .yaml/.yml, .hjson,
// anything else is treated as JSON (with a repair pass for sloppy files).
// A "years" key in the file overrides the years argument.
func LoadFile(path string, years int) (Set, error) {
	s, err := Default(years)
	if err != nil {
		return Set{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("assumption file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Set{}, fmt.Errorf("assumption file %s: %v", path, err)
		}
	case ".hjson":
		if err := utils.ParseHJSONToStruct(string(data), &s); err != nil {
			return Set{}, fmt.Errorf("assumption file %s: %v", path, err)
		}
	default:
		if err := utils.ParseLenientJSON(string(data), &s); err != nil {
			return Set{}, fmt.Errorf("assumption file %s: %v", path, err)
		}
	}

	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}
