package utils

import (
	"math"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile loads and parses a TOML file into the provided struct
func LoadTOMLFile(configPath string, config any) error {
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	return nil
}

// ParseTOMLWithRecovery decodes a TOML file into a generic map so that the
// sections that did parse can still be picked up one key at a time.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	tempConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &tempConfig); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}
	return tempConfig, nil
}

// Section binds the keys of one TOML table to typed destinations.
type Section struct {
	Name  string
	Ints  map[string]*int
	Bools map[string]*bool
}

// RecoverSections copies every key of data that carries the expected type into
// its destination. Missing keys and tables are ignored; keys present with the
// wrong type keep their current value and are returned as "table.key".
func RecoverSections(data map[string]any, sections ...Section) (skipped []string) {
	for _, sec := range sections {
		table, ok := data[sec.Name].(map[string]any)
		if !ok {
			if _, present := data[sec.Name]; present {
				skipped = append(skipped, sec.Name)
			}
			continue
		}
		for key, dst := range sec.Ints {
			raw, present := table[key]
			if !present {
				continue
			}
			if v, ok := tomlInt(raw); ok {
				*dst = v
			} else {
				skipped = append(skipped, sec.Name+"."+key)
			}
		}
		for key, dst := range sec.Bools {
			raw, present := table[key]
			if !present {
				continue
			}
			if v, ok := raw.(bool); ok {
				*dst = v
			} else {
				skipped = append(skipped, sec.Name+"."+key)
			}
		}
	}
	sort.Strings(skipped)
	return skipped
}

// tomlInt accepts TOML integers (int64) and floats with no fractional part.
func tomlInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return int(v), true
		}
	}
	return 0, false
}
