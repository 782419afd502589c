package resolver

import "strings"

// PassThroughRule names a resolution where no synonym rule matched.
const PassThroughRule = "pass-through"

// DefaultTermRules maps specialties and localized synonyms onto a doctor
// name fragment. Order is significant.
var DefaultTermRules = RuleSet{
	{Name: "cardiology", Match: ContainsAny("heart", "cardio", "idhayam"), Result: "Priya"},
	{Name: "dermatology", Match: ContainsAny("skin", "derm", "thol"), Result: "Arun"},
	{Name: "danielle", Match: ContainsAny("daniel"), Result: "Danielle"},
}

// Resolution is the outcome of resolving one search term.
type Resolution struct {
	Term     string // lowercased, trimmed input
	Fragment string // name fragment to query the directory with
	Rule     string // matched rule name, or PassThroughRule
}

type TermResolver struct {
	rules RuleSet
}

func NewTermResolver(rules RuleSet) *TermResolver {
	return &TermResolver{rules: rules}
}

// Resolve lowercases and trims raw, then maps it onto a name fragment.
// Unmatched terms pass through unchanged so direct name searches still work.
func (r *TermResolver) Resolve(raw string) Resolution {
	term := NormalizeTerm(raw)
	if rule, ok := r.rules.Apply(term); ok {
		return Resolution{Term: term, Fragment: rule.Result, Rule: rule.Name}
	}
	return Resolution{Term: term, Fragment: term, Rule: PassThroughRule}
}

func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
