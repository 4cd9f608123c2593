package core

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// OptionsFile is the on-disk form of a simulation setup:
//
//	sim: elementary
//	options:
//	  w: 256
//	  rule: 30
type OptionsFile struct {
	Sim     string         `yaml:"sim"`
	Options map[string]any `yaml:"options"`
}

// LoadOptions reads a YAML options file.
func LoadOptions(path string) (*OptionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML options, rejecting unknown top-level fields.
func ParseOptions(data []byte) (*OptionsFile, error) {
	var f OptionsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return &f, nil
}

// StringMap flattens the options into the key/value form consumed by sim
// factories.
func (f *OptionsFile) StringMap() map[string]string {
	out := make(map[string]string, len(f.Options))
	for k, v := range f.Options {
		switch val := v.(type) {
		case string:
			out[k] = val
		case int:
			out[k] = strconv.Itoa(val)
		case bool:
			out[k] = strconv.FormatBool(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case nil:
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
