// Package listing reports every program with examples, and where they come from.
package listing

import (
	"slices"
	"strings"

	"github.com/dkoosis/eg/internal/files"
)

// Flags appended to a listed name.
const (
	FlagOnlyCustom       = "+"
	FlagCustomAndDefault = "*"
)

// Source says which directories hold examples for a program.
type Source int

const (
	DefaultOnly Source = iota
	CustomOnly
	Both
)

func (s Source) String() string {
	switch s {
	case CustomOnly:
		return "custom"
	case Both:
		return "both"
	default:
		return "default"
	}
}

// Entry is one listed program.
type Entry struct {
	Name   string
	Source Source
}

// String renders the entry as eg prints it: "cp", "cp +", or "cp *".
func (e Entry) String() string {
	switch e.Source {
	case CustomOnly:
		return e.Name + " " + FlagOnlyCustom
	case Both:
		return e.Name + " " + FlagCustomAndDefault
	default:
		return e.Name
	}
}

// Merge unions two ascending, case-sensitive sorted lists of example file
// names in one pass. Names are compared with their suffix and emitted without
// it. Inputs are not modified.
func Merge(defaultNames, customNames []string) []Entry {
	result := make([]Entry, 0, max(len(defaultNames), len(customNames)))

	d, c := 0, 0
	for d < len(defaultNames) && c < len(customNames) {
		def, cus := defaultNames[d], customNames[c]
		switch {
		case def == cus:
			result = append(result, Entry{Name: withoutSuffix(def), Source: Both})
			d++
			c++
		case def < cus:
			result = append(result, Entry{Name: withoutSuffix(def), Source: DefaultOnly})
			d++
		default:
			result = append(result, Entry{Name: withoutSuffix(cus), Source: CustomOnly})
			c++
		}
	}

	for ; d < len(defaultNames); d++ {
		result = append(result, Entry{Name: withoutSuffix(defaultNames[d]), Source: DefaultOnly})
	}
	for ; c < len(customNames); c++ {
		result = append(result, Entry{Name: withoutSuffix(customNames[c]), Source: CustomOnly})
	}

	return result
}

// List reads both directories and merges their listings. A directory that
// is empty or missing contributes nothing. Listings are sorted here because
// directory order is not guaranteed.
func List(store *files.Store, examplesDir, customDir string) ([]Entry, error) {
	defaultNames, err := sortedNames(store, examplesDir)
	if err != nil {
		return nil, err
	}
	customNames, err := sortedNames(store, customDir)
	if err != nil {
		return nil, err
	}
	return Merge(defaultNames, customNames), nil
}

// Strings renders entries with String.
func Strings(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

func sortedNames(store *files.Store, dir string) ([]string, error) {
	if !store.IsDir(dir) {
		return nil, nil
	}
	names, err := store.List(dir)
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

func withoutSuffix(name string) string {
	return strings.TrimSuffix(name, files.ExampleSuffix)
}
