// Package classnames combines utility class fragments.
//
// Fragments are merged left to right. When two classes target the same utility
// under the same variants (for example "bg-blue-500" and "bg-coral-700", or
// "px-5" followed by "p-2") the later class wins and the earlier one is dropped,
// so callers can override a computed fragment simply by appending to it.
package classnames

import (
	"slices"
	"strings"
)

// Fragment is a whitespace separated list of utility classes.
type Fragment string

// String returns the fragment as a plain class attribute value.
func (f Fragment) String() string {
	return string(f)
}

// Classes splits the fragment into individual classes.
func (f Fragment) Classes() []string {
	return strings.Fields(string(f))
}

// Has reports whether the fragment contains the exact class.
func (f Fragment) Has(class string) bool {
	return slices.Contains(f.Classes(), class)
}

// IsEmpty reports whether the fragment holds no classes.
func (f Fragment) IsEmpty() bool {
	return strings.TrimSpace(string(f)) == ""
}

// If returns f when cond is true and an empty fragment otherwise.
func If(cond bool, f Fragment) Fragment {
	if cond {
		return f
	}
	return ""
}

// Merge joins fragments in order and resolves utility conflicts in favour of
// the later class. Duplicate classes collapse to their last occurrence.
func Merge(fragments ...Fragment) Fragment {
	var tokens []string
	for _, f := range fragments {
		tokens = append(tokens, strings.Fields(string(f))...)
	}
	if len(tokens) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		u := parseUtility(tokens[i])
		key := u.key(u.group)
		if _, conflict := seen[key]; conflict {
			continue
		}
		seen[key] = struct{}{}
		for _, narrower := range subsumes[u.group] {
			seen[u.key(narrower)] = struct{}{}
		}
		kept = append(kept, tokens[i])
	}

	slices.Reverse(kept)
	return Fragment(strings.Join(kept, " "))
}

// Join concatenates fragments without conflict resolution.
func Join(fragments ...Fragment) Fragment {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if s := strings.TrimSpace(string(f)); s != "" {
			parts = append(parts, s)
		}
	}
	return Fragment(strings.Join(parts, " "))
}
