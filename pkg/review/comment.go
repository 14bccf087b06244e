package review

import (
	"bytes"
	"text/template"

	"github.com/kelvintaywl/prbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Composer selects and renders the feedback comment for a verdict. Template
// text is supplied by the caller (embedded defaults or operator files); the
// issues template is parsed once at construction.
type Composer struct {
	good   string
	issues *template.Template
}

// issuesView is the data passed to the issues template
type issuesView struct {
	Issues []string
}

// NewComposer creates a Composer from the compliant and issues template
// strings. A malformed issues template is a construction error.
func NewComposer(goodTemplate, issuesTemplate string) (*Composer, error) {
	tmpl, err := template.New("issues").Parse(issuesTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse issues template")
	}

	return &Composer{
		good:   goodTemplate,
		issues: tmpl,
	}, nil
}

// Compose returns the comment body for the verdict. A compliant verdict
// yields the compliant template unmodified; otherwise violation messages are
// rendered as a list in verdict order, without deduplication.
func (c *Composer) Compose(verdict model.Verdict) (string, error) {
	if verdict.Compliant {
		return c.good, nil
	}

	view := issuesView{
		Issues: make([]string, 0, len(verdict.Violations)),
	}
	for _, v := range verdict.Violations {
		view.Issues = append(view.Issues, v.Message)
	}

	var buf bytes.Buffer
	if err := c.issues.Execute(&buf, view); err != nil {
		return "", goerr.Wrap(err, "failed to render issues template")
	}

	return buf.String(), nil
}
