package model

// PullRequestInfo holds the pull request fields extracted from a webhook payload
type PullRequestInfo struct {
	Owner  string   // Repository owner
	Repo   string   // Repository name
	Number int      // Pull request number
	Title  string   // Pull request title
	Body   string   // Pull request description
	Branch string   // Head branch name
	Labels []string // Label names attached to the pull request
}

// HasLabel reports whether the pull request carries the given label
func (p *PullRequestInfo) HasLabel(name string) bool {
	for _, l := range p.Labels {
		if l == name {
			return true
		}
	}
	return false
}
