package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/kelvintaywl/prbot/pkg/cli/config"
	"github.com/kelvintaywl/prbot/pkg/review"
)

func TestComment_Load_Defaults(t *testing.T) {
	var cfg config.Comment

	good, issues, err := cfg.Load()
	gt.NoError(t, err)
	gt.Equal(t, good, review.DefaultGoodComment)
	gt.Equal(t, issues, review.DefaultIssuesComment)
}

func TestComment_Load_Overrides(t *testing.T) {
	dir := t.TempDir()

	goodPath := filepath.Join(dir, "good.txt")
	gt.NoError(t, os.WriteFile(goodPath, []byte("ship it"), 0600))

	issuesPath := filepath.Join(dir, "issues.txt")
	gt.NoError(t, os.WriteFile(issuesPath, []byte("fix:{{range .Issues}} {{.}}{{end}}"), 0600))

	cfg := config.Comment{
		GoodCommentFile: goodPath,
		IssuesFile:      issuesPath,
	}

	good, issues, err := cfg.Load()
	gt.NoError(t, err)
	gt.Equal(t, good, "ship it")
	gt.Equal(t, issues, "fix:{{range .Issues}} {{.}}{{end}}")
}

func TestComment_Load_MissingFile(t *testing.T) {
	cfg := config.Comment{
		GoodCommentFile: filepath.Join(t.TempDir(), "missing.txt"),
	}

	_, _, err := cfg.Load()
	gt.Error(t, err)
}
