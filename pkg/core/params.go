package core

import (
	"slices"
	"strconv"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes enumerated string parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a generator.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a generator.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by generators that describe their config.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds an integer parameter entry from an int64.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating point parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// BoolParam builds a boolean parameter entry.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// StringParam builds an enumerated string parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// ParamReader reads typed values out of a flag-style string map. The first
// parse failure is remembered and reported by Err; later reads are skipped.
// Keys that no read asked for are reported by Err as well.
type ParamReader struct {
	cfg  map[string]string
	seen map[string]bool
	err  error
}

// NewParamReader wraps cfg. A nil map is valid and yields no values.
func NewParamReader(cfg map[string]string) *ParamReader {
	return &ParamReader{cfg: cfg, seen: map[string]bool{}}
}

func (p *ParamReader) lookup(key string) (string, bool) {
	p.seen[key] = true
	if p.err != nil || p.cfg == nil {
		return "", false
	}
	v, ok := p.cfg[key]
	return strings.TrimSpace(v), ok
}

// Int overwrites dst when key is present.
func (p *ParamReader) Int(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		p.err = Invalidf("%s: %q is not an integer", key, v)
		return
	}
	*dst = parsed
}

// Int64 overwrites dst when key is present.
func (p *ParamReader) Int64(key string, dst *int64) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.err = Invalidf("%s: %q is not an integer", key, v)
		return
	}
	*dst = parsed
}

// Float overwrites dst when key is present.
func (p *ParamReader) Float(key string, dst *float64) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = Invalidf("%s: %q is not a number", key, v)
		return
	}
	*dst = parsed
}

// Bool overwrites dst when key is present.
func (p *ParamReader) Bool(key string, dst *bool) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		p.err = Invalidf("%s: %q is not a boolean", key, v)
		return
	}
	*dst = parsed
}

// Text overwrites dst when key is present.
func (p *ParamReader) Text(key string, dst *string) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	*dst = v
}

// Err returns the first parse failure, or an error naming every key that was
// never read.
func (p *ParamReader) Err() error {
	if p.err != nil {
		return p.err
	}
	if unknown := p.Unknown(); len(unknown) > 0 {
		return Invalidf("unknown parameters: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// Unknown returns the sorted keys of the wrapped map that no read asked for.
func (p *ParamReader) Unknown() []string {
	var out []string
	for k := range p.cfg {
		if !p.seen[k] {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
