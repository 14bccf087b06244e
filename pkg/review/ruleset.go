package review

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kelvintaywl/prbot/pkg/domain/model"
)

// DefaultMinLength is the minimum description length enforced by the
// min_length rule, counted in runes after trimming surrounding whitespace.
const DefaultMinLength = 10

// Rule is a pure predicate over a pull request description.
// Passed reports whether the description satisfies the rule.
type Rule struct {
	ID      string
	Message string // Human readable description of the rule (imperative)
	Passed  func(description string) bool
}

// RuleSet is a fixed ordered collection of rules. Every rule runs on every
// evaluation; the order of violations in a Verdict matches rule order.
type RuleSet struct {
	rules []Rule
}

// config holds internal RuleSet configuration
type config struct {
	minLength int
	extra     []Rule
}

// Option is a functional option for RuleSet configuration
type Option func(*config)

// WithMinLength sets the threshold used by the min_length rule
func WithMinLength(n int) Option {
	return func(c *config) {
		c.minLength = n
	}
}

// WithRule appends a rule after the baseline rules. Existing rules are
// never affected by added ones.
func WithRule(r Rule) Option {
	return func(c *config) {
		c.extra = append(c.extra, r)
	}
}

// New creates a RuleSet with the baseline rules and any options applied
func New(opts ...Option) *RuleSet {
	cfg := &config{
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rules := []Rule{
		{
			ID:      "non_empty",
			Message: "description should not be empty",
			Passed: func(d string) bool {
				return strings.TrimSpace(d) != ""
			},
		},
		{
			ID:      "min_length",
			Message: fmt.Sprintf("description should be at least %d characters", cfg.minLength),
			Passed: func(d string) bool {
				return utf8.RuneCountInString(strings.TrimSpace(d)) >= cfg.minLength
			},
		},
		{
			ID:      "story_link",
			Message: "should have story link",
			Passed: anyLine(func(line string) bool {
				return strings.Contains(line, "story: ")
			}),
		},
		{
			ID:      "todos_done",
			Message: "all todos should be done",
			Passed: allLines(func(line string) bool {
				return !strings.Contains(line, "- [ ]")
			}),
		},
	}

	return &RuleSet{
		rules: append(rules, cfg.extra...),
	}
}

// Evaluate checks the description against every rule and returns the
// verdict. It is total over all strings; an empty description is a normal
// failing input, not an error.
func (rs *RuleSet) Evaluate(description string) model.Verdict {
	var violations []model.RuleViolation
	for _, r := range rs.rules {
		if !r.Passed(description) {
			violations = append(violations, model.RuleViolation{
				RuleID:  r.ID,
				Message: r.Message,
			})
		}
	}

	return model.Verdict{
		Compliant:  len(violations) == 0,
		Violations: violations,
	}
}

// anyLine lifts a per-line predicate to a description predicate satisfied
// when at least one line matches
func anyLine(fn func(line string) bool) func(string) bool {
	return func(description string) bool {
		for _, line := range strings.Split(description, "\n") {
			if fn(line) {
				return true
			}
		}
		return false
	}
}

// allLines lifts a per-line predicate to a description predicate satisfied
// only when every line matches
func allLines(fn func(line string) bool) func(string) bool {
	return func(description string) bool {
		for _, line := range strings.Split(description, "\n") {
			if !fn(line) {
				return false
			}
		}
		return true
	}
}
