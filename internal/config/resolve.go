package config

import (
	"errors"
	"strconv"
)

// Request describes where a run's settings come from. Later sources win:
// file params, then Overrides, then Seed. The generator name comes from
// Generator, then the file, then Fallback.
type Request struct {
	Generator string
	File      string
	Overrides []string
	Seed      *int64
	Fallback  string
}

// Resolve returns the generator name and the flattened params for req.
func Resolve(req Request) (string, map[string]string, error) {
	var file File
	if req.File != "" {
		loaded, err := Load(req.File)
		if err != nil {
			return "", nil, err
		}
		file = loaded
	}
	name := req.Generator
	if name == "" {
		name = file.Generator
	}
	if name == "" {
		name = req.Fallback
	}
	if name == "" {
		return "", nil, errors.New("no generator given on the command line or in the config file")
	}
	overrides, err := ParseOverrides(req.Overrides)
	if err != nil {
		return "", nil, err
	}
	params := Merge(file.Flatten(), overrides)
	if req.Seed != nil {
		params["seed"] = strconv.FormatInt(*req.Seed, 10)
	}
	return name, params, nil
}
