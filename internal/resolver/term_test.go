package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermResolver_Resolve(t *testing.T) {
	r := NewTermResolver(DefaultTermRules)

	tests := []struct {
		name     string
		raw      string
		fragment string
		rule     string
	}{
		{"heart", "heart", "Priya", "cardiology"},
		{"cardio", "cardio", "Priya", "cardiology"},
		{"idhayam", "idhayam", "Priya", "cardiology"},
		{"uppercase with trailing space", "HEART ", "Priya", "cardiology"},
		{"cardio inside sentence", "cardio specialist", "Priya", "cardiology"},
		{"skin", "skin", "Arun", "dermatology"},
		{"derm", "derm", "Arun", "dermatology"},
		{"thol", "thol", "Arun", "dermatology"},
		{"daniel", "daniel", "Danielle", "danielle"},
		{"daniel mixed case", "Dr. DANIEL please", "Danielle", "danielle"},
		{"unmatched passes through lowercased", "  Dr. Priya ", "dr. priya", PassThroughRule},
		{"empty", "", "", PassThroughRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.raw)
			assert.Equal(t, tt.fragment, got.Fragment)
			assert.Equal(t, tt.rule, got.Rule)
			assert.Equal(t, NormalizeTerm(tt.raw), got.Term)
		})
	}
}

func TestTermResolver_FirstRuleWins(t *testing.T) {
	r := NewTermResolver(DefaultTermRules)

	// "heart" and "skin" both present: cardiology is listed first.
	got := r.Resolve("heart and skin")
	assert.Equal(t, "Priya", got.Fragment)

	// "thol" beats "daniel" for the same reason.
	got = r.Resolve("daniel thol")
	assert.Equal(t, "Arun", got.Fragment)
}

func TestTermResolver_CustomRules(t *testing.T) {
	r := NewTermResolver(RuleSet{
		{Name: "ortho", Match: ContainsAny("bone"), Result: "Kumar"},
	})

	assert.Equal(t, "Kumar", r.Resolve("Broken BONE").Fragment)
	assert.Equal(t, "heart", r.Resolve("heart").Fragment)
}
