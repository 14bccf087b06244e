package review

import _ "embed"

//go:embed templates/good_comment.txt
var DefaultGoodComment string

//go:embed templates/issues.txt
var DefaultIssuesComment string
