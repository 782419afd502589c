package resolver

import "strings"

// DefaultTimeRules maps loosely spoken times onto canonical slot strings.
// Matching is by substring, so "12PM" lands on the "2" rule.
var DefaultTimeRules = RuleSet{
	{Name: "10", Match: ContainsAny("10"), Result: "10:00 AM"},
	{Name: "9", Match: ContainsAny("9"), Result: "09:00 AM"},
	{Name: "2", Match: ContainsAny("2"), Result: "02:00 PM"},
}

var timeCleaner = strings.NewReplacer(".", "", " ", "")

// TimeResult is the outcome of normalizing one time string.
type TimeResult struct {
	Cleaned string // input without periods or spaces, uppercased
	Slot    string // canonical slot, or Cleaned when nothing matched
	Rule    string // matched rule name, empty when nothing matched
	// Ambiguous is set when the leading hour digits of the input differ
	// from the matched rule's needle, e.g. "12PM" matching "2".
	Ambiguous bool
}

func (t TimeResult) Matched() bool {
	return t.Rule != ""
}

type TimeNormalizer struct {
	rules RuleSet
}

func NewTimeNormalizer(rules RuleSet) *TimeNormalizer {
	return &TimeNormalizer{rules: rules}
}

func (n *TimeNormalizer) Normalize(raw string) TimeResult {
	cleaned := strings.ToUpper(timeCleaner.Replace(raw))

	rule, ok := n.rules.Apply(cleaned)
	if !ok {
		return TimeResult{Cleaned: cleaned, Slot: cleaned}
	}

	hour := strings.TrimLeft(leadingDigits(cleaned), "0")
	return TimeResult{
		Cleaned:   cleaned,
		Slot:      rule.Result,
		Rule:      rule.Name,
		Ambiguous: hour != rule.Name,
	}
}

// leadingDigits returns the first run of ASCII digits in s.
func leadingDigits(s string) string {
	start := strings.IndexAny(s, "0123456789")
	if start < 0 {
		return ""
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[start:end]
}
