package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kelvintaywl/prbot/pkg/domain/interfaces"
	"github.com/kelvintaywl/prbot/pkg/domain/model"
	"github.com/kelvintaywl/prbot/pkg/review"
)

type webhookUseCase struct {
	github      interfaces.GitHubClient
	rules       *review.RuleSet
	composer    *review.Composer
	ignoreLabel string
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(
	githubClient interfaces.GitHubClient,
	rules *review.RuleSet,
	composer *review.Composer,
	ignoreLabel string,
) interfaces.WebhookUseCase {
	return &webhookUseCase{
		github:      githubClient,
		rules:       rules,
		composer:    composer,
		ignoreLabel: ignoreLabel,
	}
}

// ProcessEvent processes a webhook event
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
	)

	if !event.IsSupportedEvent() {
		logger.Info("Ignoring unsupported event",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	info, err := uc.extractPullRequestInfo(event)
	if err != nil {
		return err
	}

	switch event.Action {
	case model.ActionOpened, model.ActionReopened:
		return uc.prefixStoryLink(ctx, info)
	case model.ActionEdited:
		return uc.validateDescription(ctx, info)
	}

	return nil
}

// extractPullRequestInfo unmarshals the raw payload and pulls out the pull
// request fields the bot needs
func (uc *webhookUseCase) extractPullRequestInfo(event *model.WebhookEvent) (*model.PullRequestInfo, error) {
	var prEvent github.PullRequestEvent
	if err := json.Unmarshal(event.RawPayload, &prEvent); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal pull request event")
	}

	pr := prEvent.GetPullRequest()

	owner := prEvent.GetRepo().GetOwner().GetLogin()
	repo := prEvent.GetRepo().GetName()
	number := prEvent.GetNumber()
	if number == 0 {
		number = pr.GetNumber()
	}

	if owner == "" || repo == "" || number == 0 {
		return nil, goerr.New("missing required pull request fields",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}

	var labels []string
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}

	return &model.PullRequestInfo{
		Owner:  owner,
		Repo:   repo,
		Number: number,
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Branch: pr.GetHead().GetRef(),
		Labels: labels,
	}, nil
}

// prefixStoryLink prepends a tracker story link to the pull request body when
// the head branch carries a ticket ID
func (uc *webhookUseCase) prefixStoryLink(ctx context.Context, info *model.PullRequestInfo) error {
	logger := ctxlog.From(ctx)

	ticket := review.ExtractTicket(info.Branch)
	if ticket == nil {
		logger.Info("Branch has no ticket reference, nothing to prepend",
			"branch", info.Branch,
		)
		return nil
	}

	pr, err := uc.github.GetPullRequest(ctx, info.Owner, info.Repo, info.Number)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch pull request",
			goerr.V("owner", info.Owner),
			goerr.V("repo", info.Repo),
			goerr.V("number", info.Number),
		)
	}

	body := pr.GetBody()
	if strings.HasPrefix(body, "story: ") {
		logger.Info("Pull request body already carries a story link",
			"number", info.Number,
		)
		return nil
	}

	newBody := review.StoryLine(ticket) + "\r\n\n" + body
	if _, err := uc.github.UpdatePullRequest(ctx, info.Owner, info.Repo, info.Number, pr.GetTitle(), newBody); err != nil {
		return goerr.Wrap(err, "failed to update pull request body",
			goerr.V("owner", info.Owner),
			goerr.V("repo", info.Repo),
			goerr.V("number", info.Number),
		)
	}

	logger.Info("Prepended story link to pull request",
		"number", info.Number,
		"ticket", ticket.TicketID,
		"url", ticket.URL,
	)

	return nil
}

// validateDescription evaluates the pull request body against the rule set
// and posts the resulting comment
func (uc *webhookUseCase) validateDescription(ctx context.Context, info *model.PullRequestInfo) error {
	logger := ctxlog.From(ctx)

	if info.HasLabel(uc.ignoreLabel) {
		logger.Info("Pull request carries ignore label, skipping validation",
			"number", info.Number,
			"label", uc.ignoreLabel,
		)
		return nil
	}

	pr, err := uc.github.GetPullRequest(ctx, info.Owner, info.Repo, info.Number)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch pull request",
			goerr.V("owner", info.Owner),
			goerr.V("repo", info.Repo),
			goerr.V("number", info.Number),
		)
	}

	verdict := uc.rules.Evaluate(pr.GetBody())

	comment, err := uc.composer.Compose(verdict)
	if err != nil {
		return goerr.Wrap(err, "failed to compose comment",
			goerr.V("number", info.Number),
		)
	}

	if _, err := uc.github.CreateComment(ctx, info.Owner, info.Repo, info.Number, &github.IssueComment{
		Body: github.Ptr(comment),
	}); err != nil {
		return goerr.Wrap(err, "failed to post comment",
			goerr.V("owner", info.Owner),
			goerr.V("repo", info.Repo),
			goerr.V("number", info.Number),
		)
	}

	logger.Info("Posted description review comment",
		"number", info.Number,
		"compliant", verdict.Compliant,
		"violations", len(verdict.Violations),
	)

	return nil
}
