package registry

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate selects the archive entries a registry is populated from.
type Predicate func(name string) bool

// MatchSuffix matches names ending in any of suffixes under Unicode case
// folding, so ".png" matches "HERO.PNG". With no suffixes it matches nothing.
func MatchSuffix(suffixes ...string) Predicate {
	folded := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s != "" {
			folded = append(folded, cases.Fold().String(s))
		}
	}
	return func(name string) bool {
		name = cases.Fold().String(name)
		for _, s := range folded {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}
}

// MatchAll matches every name.
func MatchAll(string) bool {
	return true
}
