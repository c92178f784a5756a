// Package config loads generator settings from YAML files and command-line
// overrides and flattens them into the key/value form generator factories
// accept.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a generator settings file.
//
//	generator: walker
//	seed: 7
//	params:
//	  w: 64
//	  despeckle: true
type File struct {
	Generator string         `yaml:"generator"`
	Seed      *int64         `yaml:"seed,omitempty"`
	Params    map[string]any `yaml:"params"`
}

// Load reads and decodes a settings file.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML settings.
func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	for key, v := range f.Params {
		switch v.(type) {
		case string, int, int64, float64, bool:
		default:
			return File{}, fmt.Errorf("param %q: unsupported value %v", key, v)
		}
	}
	return f, nil
}

// Flatten converts the file params into factory input. The top-level seed,
// when present, wins over a seed listed under params.
func (f File) Flatten() map[string]string {
	out := make(map[string]string, len(f.Params)+1)
	for key, v := range f.Params {
		out[key] = formatValue(v)
	}
	if f.Seed != nil {
		out["seed"] = strconv.FormatInt(*f.Seed, 10)
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// ParseOverrides turns key=value pairs into a map. Later pairs win.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: expected key=value", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// Merge layers the given maps left to right into a new map.
func Merge(layers ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// Keys returns the sorted keys of m.
func Keys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
