package core

import (
	"context"
	"fmt"
	"strings"
)

// Decision is the label assigned to a user agent.
type Decision string

const (
	Block   Decision = "block"
	Allow   Decision = "allow"
	Unknown Decision = "unknown"
)

type rule struct {
	token    string
	decision Decision
}

// Evaluated in order, the first matching token wins, so an agent carrying both
// tokens is blocked.
var rules = []rule{
	{token: "Safari", decision: Block},
	{token: "Firefox", decision: Allow},
}

// Classify maps a user agent to a decision using case-sensitive substring
// matching. It is total: every input, including "", gets a decision.
func Classify(userAgent string) Decision {
	for _, r := range rules {
		if strings.Contains(userAgent, r.token) {
			return r.decision
		}
	}
	return Unknown
}

func ParseDecision(label string) (Decision, error) {
	switch d := Decision(label); d {
	case Block, Allow, Unknown:
		return d, nil
	default:
		return "", fmt.Errorf("invalid decision label '%s'", label)
	}
}

type Classifier interface {
	Classify(ctx context.Context, userAgent string) (Decision, error)

	Release()
}

// RuleClassifier serves the built-in rule table. It never returns an error.
type RuleClassifier struct{}

func (RuleClassifier) Classify(_ context.Context, userAgent string) (Decision, error) {
	return Classify(userAgent), nil
}

func (RuleClassifier) Release() {}
