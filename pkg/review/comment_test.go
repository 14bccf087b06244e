package review_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/kelvintaywl/prbot/pkg/domain/model"
	"github.com/kelvintaywl/prbot/pkg/review"
)

func TestComposer_Compose_Compliant(t *testing.T) {
	good := "Looks good to me!"
	composer, err := review.NewComposer(good, "issues:{{range .Issues}}\n- {{.}}{{end}}")
	gt.NoError(t, err)

	verdict := model.Verdict{Compliant: true}
	comment, err := composer.Compose(verdict)
	gt.NoError(t, err)
	gt.Equal(t, comment, good)
}

func TestComposer_Compose_Violations(t *testing.T) {
	composer, err := review.NewComposer("good", "issues:{{range .Issues}}\n- {{.}}{{end}}")
	gt.NoError(t, err)

	verdict := model.Verdict{
		Compliant: false,
		Violations: []model.RuleViolation{
			{RuleID: "min_length", Message: "Description too short"},
			{RuleID: "story_link", Message: "should have story link"},
		},
	}

	comment, err := composer.Compose(verdict)
	gt.NoError(t, err)
	gt.Equal(t, comment, "issues:\n- Description too short\n- should have story link")

	// Input verdict is not mutated
	gt.Equal(t, len(verdict.Violations), 2)
	gt.Equal(t, verdict.Violations[0].Message, "Description too short")
}

func TestComposer_Compose_DuplicateMessages(t *testing.T) {
	composer, err := review.NewComposer("good", "{{range .Issues}}{{.}};{{end}}")
	gt.NoError(t, err)

	verdict := model.Verdict{
		Compliant: false,
		Violations: []model.RuleViolation{
			{RuleID: "a", Message: "same message"},
			{RuleID: "b", Message: "same message"},
		},
	}

	comment, err := composer.Compose(verdict)
	gt.NoError(t, err)
	gt.Equal(t, comment, "same message;same message;")
}

func TestComposer_MalformedTemplate(t *testing.T) {
	_, err := review.NewComposer("good", "{{range .Issues}")
	gt.Error(t, err)
}

func TestComposer_DefaultTemplates(t *testing.T) {
	composer, err := review.NewComposer(review.DefaultGoodComment, review.DefaultIssuesComment)
	gt.NoError(t, err)

	good, err := composer.Compose(model.Verdict{Compliant: true})
	gt.NoError(t, err)
	gt.Equal(t, good, review.DefaultGoodComment)

	issues, err := composer.Compose(model.Verdict{
		Compliant: false,
		Violations: []model.RuleViolation{
			{RuleID: "min_length", Message: "Description too short"},
		},
	})
	gt.NoError(t, err)
	gt.String(t, issues).Contains("- Description too short")
}
