package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/kelvintaywl/prbot/pkg/cli/config"
	controller "github.com/kelvintaywl/prbot/pkg/controller/http"
	"github.com/kelvintaywl/prbot/pkg/domain/interfaces"
	githubinfra "github.com/kelvintaywl/prbot/pkg/infra/github"
	"github.com/kelvintaywl/prbot/pkg/review"
	"github.com/kelvintaywl/prbot/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		githubCfg  config.GitHub
		commentCfg config.Comment
		sentryCfg  config.Sentry
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, commentCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting prbot server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", githubCfg),
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			githubClient, err := newGitHubClient(&githubCfg)
			if err != nil {
				return err
			}

			good, issues, err := commentCfg.Load()
			if err != nil {
				return err
			}

			composer, err := review.NewComposer(good, issues)
			if err != nil {
				return goerr.Wrap(err, "failed to create comment composer")
			}

			webhookUC := usecase.NewWebhook(
				githubClient,
				review.New(),
				composer,
				githubCfg.IgnoreLabel,
			)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// newGitHubClient builds the GitHub client from config. App installation
// credentials take precedence over a personal access token.
func newGitHubClient(cfg *config.GitHub) (interfaces.GitHubClient, error) {
	if cfg.AppID != 0 {
		if cfg.InstallationID == 0 || cfg.PrivateKeyFile == "" {
			return nil, goerr.New("GitHub App auth requires installation ID and private key file")
		}

		key, err := os.ReadFile(cfg.PrivateKeyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read GitHub App private key",
				goerr.V("path", cfg.PrivateKeyFile))
		}

		client, err := githubinfra.NewAppClient(cfg.AppID, cfg.InstallationID, key)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App client")
		}
		return client, nil
	}

	if cfg.Token != "" {
		return githubinfra.NewClient(cfg.Token), nil
	}

	return nil, goerr.New("either a GitHub token or App credentials are required")
}
