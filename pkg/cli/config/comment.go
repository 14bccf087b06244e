package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/kelvintaywl/prbot/pkg/review"
)

// Comment holds feedback comment template configuration
type Comment struct {
	GoodCommentFile string
	IssuesFile      string
}

// Flags returns CLI flags for comment template configuration
func (c *Comment) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "good-comment-file",
			Usage:       "Path to template posted on compliant descriptions (embedded default if unset)",
			Destination: &c.GoodCommentFile,
			Sources:     cli.EnvVars("PRBOT_GOOD_COMMENT_FILE"),
		},
		&cli.StringFlag{
			Name:        "issues-file",
			Usage:       "Path to template posted on rule violations (embedded default if unset)",
			Destination: &c.IssuesFile,
			Sources:     cli.EnvVars("PRBOT_ISSUES_FILE"),
		},
	}
}

// Load returns the comment template texts, reading override files when
// configured and falling back to the embedded defaults
func (c *Comment) Load() (good, issues string, err error) {
	good = review.DefaultGoodComment
	issues = review.DefaultIssuesComment

	if c.GoodCommentFile != "" {
		data, readErr := os.ReadFile(c.GoodCommentFile)
		if readErr != nil {
			return "", "", goerr.Wrap(readErr, "failed to read good comment template",
				goerr.V("path", c.GoodCommentFile))
		}
		good = string(data)
	}

	if c.IssuesFile != "" {
		data, readErr := os.ReadFile(c.IssuesFile)
		if readErr != nil {
			return "", "", goerr.Wrap(readErr, "failed to read issues template",
				goerr.V("path", c.IssuesFile))
		}
		issues = string(data)
	}

	return good, issues, nil
}
