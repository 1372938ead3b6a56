package artifact

import (
	"os"
	"strings"
)

// EntryMatcher picks, from the names of the working directory's top-level
// entries, those that Press treats as holding the build output.
type EntryMatcher func(entries []string, outputDir string) []string

// PrefixMatch selects every entry whose name starts with the literal
// outputDir string. It is a string prefix test, not a path comparison: with
// outputDir "out", both "out" and "outline.tex" match, and "./out" matches
// nothing. Existing setups rely on this, so it stays the default; an exact
// match can be swapped in through Press.WithMatcher.
//
// Press moves the preprint for the first match only and skips the rest, so
// a sibling such as "outline.tex" no longer makes the run fail after the
// artifact has already been moved.
func PrefixMatch(entries []string, outputDir string) []string {
	var matched []string
	for _, name := range entries {
		if strings.HasPrefix(name, outputDir) {
			matched = append(matched, name)
		}
	}
	return matched
}

// ExactMatch selects only the entry named exactly outputDir.
func ExactMatch(entries []string, outputDir string) []string {
	for _, name := range entries {
		if name == outputDir {
			return []string{name}
		}
	}
	return nil
}

func topLevelEntries(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
