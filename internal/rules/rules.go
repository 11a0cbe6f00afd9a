// Package rules builds and applies the ordered substitution rules that
// normalize file names into comparison keys.
//
// A rule replaces every non-overlapping occurrence of a literal substring.
// Rules apply in declaration order and each rule scans the output of the
// previous one, so a rule sequence is not commutative.
package rules

import (
	"fmt"
	"strings"

	"github.com/vvka-141/fscmp/pkg/fscmp"
)

// Pair builds a RuleSet from the ordered --match and --replace occurrences.
// Rule i pairs matches[i] with replaces[i]. A match without a paired replace
// is a configuration error naming the offending match; a replace without a
// preceding match is likewise rejected.
func Pair(matches, replaces []string) (fscmp.RuleSet, error) {
	if len(replaces) > len(matches) {
		return nil, fmt.Errorf("%w: --replace %q has no preceding --match",
			fscmp.ErrInvalidConfig, replaces[len(matches)])
	}
	if len(matches) > len(replaces) {
		return nil, fmt.Errorf("%w: --match %q is missing its --replace",
			fscmp.ErrInvalidConfig, matches[len(replaces)])
	}

	rs := make(fscmp.RuleSet, 0, len(matches))
	for i := range matches {
		rs = append(rs, fscmp.Rule{Match: matches[i], Replace: replaces[i]})
	}

	if err := Validate(rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// Validate checks that every rule in the set is well formed. An empty match
// string is rejected: replacing the empty string has no single well-defined
// semantics, so it is refused rather than silently applied.
func Validate(rs fscmp.RuleSet) error {
	for i, rule := range rs {
		if rule.Match == "" {
			return fmt.Errorf("%w: rule %d has an empty match string",
				fscmp.ErrInvalidConfig, i+1)
		}
	}
	return nil
}

// Apply normalizes name by folding it through the rule set: each rule
// replaces every non-overlapping occurrence of its match string, and the
// result feeds the next rule. An empty rule set returns name unchanged.
// Apply is pure and total; it never fails.
func Apply(name string, rs fscmp.RuleSet) string {
	normalized := name
	for _, rule := range rs {
		normalized = strings.ReplaceAll(normalized, rule.Match, rule.Replace)
	}
	return normalized
}
