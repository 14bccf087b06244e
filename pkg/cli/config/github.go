package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub configuration. Authentication uses either a personal
// access token or GitHub App installation credentials.
type GitHub struct {
	Token          string `masq:"secret"`
	AppID          int64
	InstallationID int64
	PrivateKeyFile string
	WebhookSecret  string `masq:"secret"`
	IgnoreLabel    string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("PRBOT_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("PRBOT_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("PRBOT_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key-file",
			Usage:       "Path to GitHub App private key file",
			Destination: &c.PrivateKeyFile,
			Sources:     cli.EnvVars("PRBOT_GITHUB_PRIVATE_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("PRBOT_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-ignore-label",
			Usage:       "Label that skips description validation",
			Value:       "pr_ignore",
			Destination: &c.IgnoreLabel,
			Sources:     cli.EnvVars("PRBOT_GITHUB_IGNORE_LABEL", "GITHUB_IGNORE_LABEL"),
		},
	}
}
