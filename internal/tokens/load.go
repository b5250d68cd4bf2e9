package tokens

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	lodestoneerrors "github.com/lodestone-studio/lodestone/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadFile reads a YAML override document and overlays it on base.
//
// The document maps table names to key/value mappings. Nested mappings are
// flattened with dots, so
//
//	animations:
//	  durations:
//	    fast: 150ms
//
// overrides "animations.durations.fast".
func LoadFile(path string, base *Set) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lodestoneerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data, base)
}

// Parse overlays an in-memory YAML document on base. name is used in errors.
func Parse(name string, data []byte, base *Set) (*Set, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, lodestoneerrors.NewParseError(name, extractLine(err), err)
	}

	overrides := make(map[string]Table, len(doc))
	for tableName, raw := range doc {
		entries, ok := raw.(map[string]any)
		if !ok {
			return nil, lodestoneerrors.NewParseError(name, 0, fmt.Errorf("table %q must be a mapping", tableName))
		}
		table := Table{}
		if err := flatten(table, "", entries); err != nil {
			return nil, lodestoneerrors.NewParseError(name, 0, fmt.Errorf("table %q: %w", tableName, err))
		}
		overrides[tableName] = table
	}

	setName := SetDefault
	if base != nil {
		setName = base.Name()
	}
	return base.Overlay(setName, overrides), nil
}

func flatten(dst Table, prefix string, entries map[string]any) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := entries[k].(type) {
		case map[string]any:
			if err := flatten(dst, key, v); err != nil {
				return err
			}
		case string:
			dst[key] = v
		case int:
			dst[key] = strconv.Itoa(v)
		case float64:
			dst[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			dst[key] = strconv.FormatBool(v)
		case nil:
			return fmt.Errorf("key %q has no value", key)
		default:
			return fmt.Errorf("key %q must be a scalar, got %T", key, v)
		}
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
