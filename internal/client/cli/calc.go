package cli

import (
	"context"

	"github.com/safenotes/safenotes/internal/client/gate"
)

// CalculatorLine feeds one input line through the calculator gate one
// keystroke at a time and submits it. The returned string is what the
// calculator displays; it is empty when the line unlocked the app or did
// nothing.
func (a *App) CalculatorLine(_ context.Context, line string) string {
	for _, r := range line {
		if r == ' ' || r == '\t' {
			continue
		}
		a.gate.Press(string(r))
	}

	res := a.gate.Submit()
	if res.Outcome == gate.OutcomeEvaluated {
		return res.Display
	}
	return ""
}
