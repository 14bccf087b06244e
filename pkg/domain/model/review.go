package model

// RuleViolation represents a single rule broken by a pull request description
type RuleViolation struct {
	RuleID  string // Identifier of the violated rule
	Message string // Human readable description of the rule (imperative)
}

// Verdict is the result of evaluating a description against the rule set.
// Compliant is true if and only if Violations is empty, and Violations
// preserves rule evaluation order.
type Verdict struct {
	Compliant  bool
	Violations []RuleViolation
}

// TicketReference is a tracker ticket derived from a branch name
type TicketReference struct {
	TicketID string // Leading token of the branch name
	URL      string // Tracker URL for the ticket
}
