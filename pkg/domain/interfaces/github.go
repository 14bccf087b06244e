package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// GetPullRequest fetches the current state of a pull request
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error)

	// UpdatePullRequest patches the title and body of a pull request
	UpdatePullRequest(ctx context.Context, owner, repo string, number int, title, body string) (*github.PullRequest, error)

	// CreateComment creates a comment on a pull request or issue
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, error)
}
