// Package resolver maps free-text tool arguments onto canonical values using
// ordered, first-match-wins rule lists.
package resolver

import "strings"

// Predicate reports whether a normalized input satisfies a rule.
type Predicate func(input string) bool

// Rule pairs a predicate with the value it yields.
type Rule struct {
	Name   string
	Match  Predicate
	Result string
}

// RuleSet is evaluated top to bottom; the first matching rule wins.
type RuleSet []Rule

// Apply returns the first matching rule. ok is false when no rule matches.
func (rs RuleSet) Apply(input string) (rule Rule, ok bool) {
	for _, r := range rs {
		if r.Match != nil && r.Match(input) {
			return r, true
		}
	}
	return Rule{}, false
}

// ContainsAny matches when input contains at least one of needles.
func ContainsAny(needles ...string) Predicate {
	return func(input string) bool {
		for _, n := range needles {
			if strings.Contains(input, n) {
				return true
			}
		}
		return false
	}
}
