package tokens

import (
	"sort"
	"strings"
)

// Table maps a key (possibly dotted, e.g. "durations.fast") to a literal value.
type Table map[string]string

// Set is a named collection of token tables.
type Set struct {
	name   string
	tables map[string]Table
}

// NewSet builds a set from the given tables. The tables are copied so later
// changes to the arguments do not leak into the set.
func NewSet(name string, tables map[string]Table) *Set {
	s := &Set{name: name, tables: make(map[string]Table, len(tables))}
	for tableName, table := range tables {
		s.tables[tableName] = cloneTable(table)
	}
	return s
}

// Name returns the set name ("default", "utility", or a custom name).
func (s *Set) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Resolve returns the literal value stored under path.
// The first path segment selects the table, the rest is the key inside it.
func (s *Set) Resolve(path string) (string, bool) {
	if s == nil {
		return "", false
	}
	tableName, key, ok := strings.Cut(path, ".")
	if !ok || key == "" {
		return "", false
	}
	table, ok := s.tables[tableName]
	if !ok {
		return "", false
	}
	value, ok := table[key]
	return value, ok
}

// MustResolve returns the value under path or "" when it is missing.
func (s *Set) MustResolve(path string) string {
	value, _ := s.Resolve(path)
	return value
}

// First resolves each path in order and returns the first one present.
func (s *Set) First(paths ...string) (string, bool) {
	for _, path := range paths {
		if value, ok := s.Resolve(path); ok {
			return value, true
		}
	}
	return "", false
}

// Tables returns the sorted table names.
func (s *Set) Tables() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the sorted keys of one table, or nil if the table is unknown.
func (s *Set) Keys(table string) []string {
	if s == nil {
		return nil
	}
	t, ok := s.tables[table]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Table returns a copy of the named table.
func (s *Set) Table(name string) (Table, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.tables[name]
	if !ok {
		return nil, false
	}
	return cloneTable(t), true
}

// Overlay returns a new set where the given tables override or extend s.
// Keys absent from the overlay keep their value from s.
func (s *Set) Overlay(name string, overrides map[string]Table) *Set {
	merged := make(map[string]Table, len(overrides))
	if s != nil {
		for tableName, table := range s.tables {
			merged[tableName] = table
		}
	}
	for tableName, table := range overrides {
		next := cloneTable(merged[tableName])
		for key, value := range table {
			next[key] = value
		}
		merged[tableName] = next
	}
	return NewSet(name, merged)
}

func cloneTable(t Table) Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
