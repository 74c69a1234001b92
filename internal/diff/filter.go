package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter keeps the diffs whose old or new path matches at least one glob
// pattern. The "a/" and "b/" prefixes git adds are ignored when matching.
// No patterns keeps everything.
func Filter(diffs []Diff, patterns []string) ([]Diff, error) {
	if len(patterns) == 0 {
		return diffs, nil
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var kept []Diff
	for _, d := range diffs {
		if matchAny(patterns, strings.TrimPrefix(d.OldPath, "a/"), strings.TrimPrefix(d.NewPath, "b/")) {
			kept = append(kept, d)
		}
	}
	return kept, nil
}

func matchAny(patterns []string, paths ...string) bool {
	for _, pattern := range patterns {
		for _, path := range paths {
			if ok, _ := doublestar.Match(pattern, path); ok {
				return true
			}
		}
	}
	return false
}

// Find returns the index of the diff whose new path best matches query, a
// case-insensitive fuzzy subsequence such as "tuimod" for
// "internal/tui/model.go". Ties go to the earlier diff.
func Find(diffs []Diff, query string) (int, bool) {
	targets := make([]string, len(diffs))
	for i := range diffs {
		targets[i] = strings.TrimPrefix(diffs[i].NewPath, "b/")
	}
	ranks := fuzzy.RankFindFold(query, targets)
	if len(ranks) == 0 {
		return 0, false
	}
	sort.Stable(ranks)
	return ranks[0].OriginalIndex, true
}
