package style

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/cases"
)

// Config is a styling configuration mapping as supplied by callers or decoded
// from YAML. Keys are matched case-insensitively.
type Config = map[string]any

// foldKey builds a fresh Caser each time, they keep state and must not be
// shared between goroutines.
func foldKey(key string) string {
	return cases.Fold().String(strings.TrimSpace(key))
}

// asConfig checks that in is a configuration mapping.
func asConfig(in any, what string) (Config, error) {
	switch v := in.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		// yaml.v2 style documents and hand built literals
		out := make(Config, len(v))
		for k, val := range v {
			s, ok := k.(string)
			if !ok {
				return nil, configError("%s: key %v is not a string", what, k)
			}
			out[s] = val
		}
		return out, nil
	case nil:
		return nil, configError("%s: no configuration mapping", what)
	default:
		return nil, configError("%s: expected mapping, got %T", what, in)
	}
}

// walkConfig calls fn for every key of cfg using its folded form. Errors for
// all keys are accumulated.
func walkConfig(cfg Config, what string, fn func(key string, val any) (known bool, err error)) error {
	var errs error
	for _, k := range slices.Sorted(maps.Keys(cfg)) {
		known, err := fn(foldKey(k), cfg[k])
		if !known {
			errs = multierr.Append(errs, configError("%s: unrecognized key %q", what, k))
			continue
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s.%s: %w", what, k, err))
		}
	}
	return errs
}

func asString(in any) (string, error) {
	switch v := in.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", nil
	default:
		return "", configError("expected string, got %T", in)
	}
}

func asBool(in any) (bool, error) {
	switch v := in.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, configError("%q is not a boolean", v)
		}
		return b, nil
	case int:
		return v != 0, nil
	default:
		return false, configError("expected boolean, got %T", in)
	}
}

func asFloat(in any) (float64, error) {
	var f float64
	switch v := in.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return 0, configError("%q is not a number", v)
		}
	default:
		return 0, configError("expected number, got %T", in)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, configError("%v is not a finite number", in)
	}
	return f, nil
}

func asInt(in any) (int, error) {
	f, err := asFloat(in)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, configError("%v is not an integer", in)
	}
	return int(f), nil
}
