package review_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/kelvintaywl/prbot/pkg/domain/model"
	"github.com/kelvintaywl/prbot/pkg/review"
)

func TestRuleSet_Evaluate(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		wantCompliant  bool
		wantViolations []string
	}{
		{
			name:          "Compliant description",
			description:   "story: https://pivotaltracker.com/story/show/123\n\nThis change fixes the login flow.",
			wantCompliant: true,
		},
		{
			name:           "Empty description",
			description:    "",
			wantCompliant:  false,
			wantViolations: []string{"non_empty", "min_length", "story_link"},
		},
		{
			name:           "Whitespace only description",
			description:    "   \n\t\n",
			wantCompliant:  false,
			wantViolations: []string{"non_empty", "min_length", "story_link"},
		},
		{
			name:           "Too short description",
			description:    "story: x",
			wantCompliant:  false,
			wantViolations: []string{"min_length"},
		},
		{
			name:           "Missing story link",
			description:    "This change fixes the login flow.",
			wantCompliant:  false,
			wantViolations: []string{"story_link"},
		},
		{
			name:           "Unchecked todo",
			description:    "story: https://pivotaltracker.com/story/show/123\n\n- [ ] write tests",
			wantCompliant:  false,
			wantViolations: []string{"todos_done"},
		},
		{
			name:          "Checked todos only",
			description:   "story: https://pivotaltracker.com/story/show/123\n\n- [x] write tests",
			wantCompliant: true,
		},
		{
			name:           "Multiple violations keep rule order",
			description:    "- [ ] todo",
			wantCompliant:  false,
			wantViolations: []string{"story_link", "todos_done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := review.New()
			verdict := rs.Evaluate(tt.description)

			gt.Equal(t, verdict.Compliant, tt.wantCompliant)
			gt.Equal(t, verdict.Compliant, len(verdict.Violations) == 0)

			gt.Equal(t, len(verdict.Violations), len(tt.wantViolations))
			for i, want := range tt.wantViolations {
				gt.Equal(t, verdict.Violations[i].RuleID, want)
			}
		})
	}
}

func TestRuleSet_Evaluate_Deterministic(t *testing.T) {
	rs := review.New()
	description := "- [ ] short"

	first := rs.Evaluate(description)
	second := rs.Evaluate(description)

	gt.Equal(t, first.Compliant, second.Compliant)
	gt.Equal(t, len(first.Violations), len(second.Violations))
	for i := range first.Violations {
		gt.Equal(t, first.Violations[i], second.Violations[i])
	}
}

func TestRuleSet_WithMinLength(t *testing.T) {
	rs := review.New(review.WithMinLength(50))

	verdict := rs.Evaluate("story: https://pivotaltracker.com/story/show/1 ok")
	gt.Equal(t, verdict.Compliant, false)
	gt.Equal(t, len(verdict.Violations), 1)
	gt.Equal(t, verdict.Violations[0].RuleID, "min_length")
}

func TestRuleSet_WithRule(t *testing.T) {
	custom := review.Rule{
		ID:      "mention_reviewer",
		Message: "should mention a reviewer",
		Passed: func(d string) bool {
			return strings.Contains(d, "@")
		},
	}

	rs := review.New(review.WithRule(custom))

	// Added rule reports after the baseline rules
	verdict := rs.Evaluate("This change fixes the login flow.")
	gt.Equal(t, verdict.Compliant, false)
	gt.Equal(t, verdict.Violations[len(verdict.Violations)-1], model.RuleViolation{
		RuleID:  "mention_reviewer",
		Message: "should mention a reviewer",
	})

	// Baseline behavior is unaffected by the added rule
	base := review.New().Evaluate("This change fixes the login flow.")
	gt.Equal(t, len(verdict.Violations), len(base.Violations)+1)
}
