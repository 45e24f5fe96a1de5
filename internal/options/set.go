package options

import (
	"maps"
	"slices"
)

// RawOptionSet holds the raw string value of every option present on the
// command line. It is immutable once built.
type RawOptionSet struct {
	values map[ID]string
}

// NewRawOptionSet builds a set from the given values. The map is copied.
func NewRawOptionSet(values map[ID]string) RawOptionSet {
	return RawOptionSet{values: maps.Clone(values)}
}

// Lookup returns the raw value of id and whether it was supplied.
func (s RawOptionSet) Lookup(id ID) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Has reports whether id was supplied, even with an empty value.
func (s RawOptionSet) Has(id ID) bool {
	_, ok := s.values[id]
	return ok
}

// Get returns the raw value of id, or the empty string when absent.
func (s RawOptionSet) Get(id ID) string {
	return s.values[id]
}

// Len returns the number of supplied options.
func (s RawOptionSet) Len() int {
	return len(s.values)
}

// IDs returns the supplied option IDs in schema order.
func (s RawOptionSet) IDs() []ID {
	ids := slices.Collect(maps.Keys(s.values))
	slices.Sort(ids)
	return ids
}

// Args re-serializes the set into command-line tokens in schema order.
func (s RawOptionSet) Args() []string {
	args := make([]string, 0, len(s.values))
	for _, id := range s.IDs() {
		args = append(args, id.Flag()+"="+s.values[id])
	}
	return args
}
