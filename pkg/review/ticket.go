package review

import (
	"strings"

	"github.com/kelvintaywl/prbot/pkg/domain/model"
)

const (
	// ticketBranchSuffix must match byte-for-byte; the leading token is
	// taken verbatim as the ticket ID.
	ticketBranchSuffix = "-test-branch"

	storyURLBase = "https://pivotaltracker.com/story/show/"
)

// ExtractTicket derives a ticket reference from a branch name of the form
// "<ticket-id>-test-branch". It returns nil when the branch does not match.
// Extraction is purely syntactic; ticket existence is never verified.
func ExtractTicket(branch string) *model.TicketReference {
	id, ok := strings.CutSuffix(branch, ticketBranchSuffix)
	if !ok || id == "" {
		return nil
	}

	return &model.TicketReference{
		TicketID: id,
		URL:      storyURLBase + id,
	}
}

// StoryLine renders the description line injected for a ticket reference
func StoryLine(ref *model.TicketReference) string {
	return "story: " + ref.URL
}
