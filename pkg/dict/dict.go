// Package dict defines the dictionary shape consumed by the word-chain
// engine and the guard that validates arbitrary decoded data against it.
package dict

import (
	"fmt"
	"sort"
)

// Dictionary maps a starting syllable to the ordered syllables that may
// follow it. Keys and values keep their authored casing and diacritics;
// the engine derives its own normalized view. The engine treats a
// Dictionary as read-only once handed over.
type Dictionary map[string][]string

// Keys returns the dictionary keys in sorted order. Go map iteration
// order is randomized, so the engine adopts sorted order as its stable
// scan order.
func (d Dictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pairs returns the total number of (first, second) combinations.
func (d Dictionary) Pairs() int {
	total := 0
	for _, vals := range d {
		total += len(vals)
	}
	return total
}

// FromRaw validates that v has the dictionary shape (string keys, list
// of string values) and converts it. A shape violation is the one hard
// failure in this module; rule-level problems are reported as result
// values by the engine.
func FromRaw(v any) (Dictionary, error) {
	switch m := v.(type) {
	case Dictionary:
		return m, nil
	case map[string][]string:
		return Dictionary(m), nil
	case map[string]any:
		d := make(Dictionary, len(m))
		for k, raw := range m {
			vals, err := toStrings(raw)
			if err != nil {
				return nil, fmt.Errorf("dictionary key %q: %w", k, err)
			}
			d[k] = vals
		}
		return d, nil
	default:
		return nil, fmt.Errorf("dictionary: want a map of string to list of strings, got %T", v)
	}
}

func toStrings(raw any) ([]string, error) {
	switch vals := raw.(type) {
	case []string:
		return vals, nil
	case []any:
		out := make([]string, len(vals))
		for i, item := range vals {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: want string, got %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want a list of strings, got %T", raw)
	}
}
