package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"

	"github.com/kelvintaywl/prbot/pkg/domain/interfaces"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub client authenticated with a personal access token
func NewClient(token string) interfaces.GitHubClient {
	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}
}

// NewAppClient creates a GitHub client authenticated as a GitHub App installation
func NewAppClient(appID, installationID int64, privateKey []byte) (interfaces.GitHubClient, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}

	return &client{
		githubClient: github.NewClient(&http.Client{Transport: itr}),
	}, nil
}

// GetPullRequest fetches the current state of a pull request
func (c *client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	return pr, nil
}

// UpdatePullRequest patches the title and body of a pull request
func (c *client) UpdatePullRequest(ctx context.Context, owner, repo string, number int, title, body string) (*github.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	return pr, nil
}

// CreateComment creates a comment on a pull request or issue
func (c *client) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, error) {
	created, _, err := c.githubClient.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on %s/%s#%d: %w", owner, repo, number, err)
	}

	return created, nil
}
