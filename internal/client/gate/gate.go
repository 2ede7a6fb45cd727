// Package gate implements the disguise gate: a fully functional arithmetic
// calculator whose evaluate action doubles as the PIN entry for the hidden
// app surface.
//
// The gate is deliberately indistinguishable from a plain calculator. A
// buffer that matches the configured PIN verbatim unlocks; anything else is
// evaluated as arithmetic, and a wrong PIN looks exactly like a malformed
// expression. There is no attempt counter and no lockout: any visible
// deterrence would break the disguise.
package gate

import (
	"strings"

	"github.com/safenotes/safenotes/internal/client/state"
)

// Outcome classifies the result of a submit.
type Outcome int

const (
	// OutcomeContinue means nothing happened (empty buffer).
	OutcomeContinue Outcome = iota
	// OutcomeEvaluated means the buffer was evaluated as arithmetic.
	OutcomeEvaluated
	// OutcomeUnlocked means the buffer matched the PIN and the store has
	// been flipped to unlocked.
	OutcomeUnlocked
)

// Result is the visible consequence of a Submit.
type Result struct {
	Outcome Outcome
	// Display is the calculator output: a formatted number, or "Error".
	// Empty for OutcomeContinue and OutcomeUnlocked.
	Display string
	// Err holds the evaluation error behind an "Error" display.
	Err error
}

const errorDisplay = "Error"

// Gate is the calculator unlock state machine. It is driven by single key
// presses and owns the raw input buffer.
type Gate struct {
	store *state.Store

	expression    string
	lastResult    string
	justEvaluated bool
}

// New returns a locked gate bound to the given state store.
func New(store *state.Store) *Gate {
	return &Gate{store: store}
}

// Expression returns the current input buffer as shown on the display.
func (g *Gate) Expression() string {
	return g.expression
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

func isBinaryOp(key string) bool {
	return key == "+" || key == "-" || key == "*" || key == "/"
}

// currentOperand returns the buffer segment after the last binary operator.
func (g *Gate) currentOperand() string {
	idx := strings.LastIndexAny(g.expression, "+-*/")
	return g.expression[idx+1:]
}

// Press feeds one calculator key: a digit, ".", "%", or a binary operator.
// Entry policy:
//   - typing a digit after a lone "0" operand is ignored
//   - only one decimal point per operand
//   - consecutive binary operators collapse to the most recent one
//   - after an evaluation, a digit starts a fresh expression while an
//     operator chains from the displayed result
func (g *Gate) Press(key string) {
	switch {
	case isDigit(key):
		if g.justEvaluated {
			g.expression = key
			g.justEvaluated = false
			return
		}
		if g.currentOperand() == "0" {
			return
		}
		g.expression += key

	case key == ".":
		if g.justEvaluated {
			g.expression = "0."
			g.justEvaluated = false
			return
		}
		op := g.currentOperand()
		if strings.Contains(op, ".") {
			return
		}
		if op == "" {
			g.expression += "0."
			return
		}
		g.expression += key

	case isBinaryOp(key):
		if g.justEvaluated {
			g.justEvaluated = false
			if g.lastResult != "" {
				g.expression = g.lastResult + key
			} else {
				g.expression = ""
			}
			return
		}
		if g.expression == "" {
			if key == "-" {
				g.expression = key
			}
			return
		}
		last := g.expression[len(g.expression)-1]
		if last == '.' {
			return
		}
		if isBinaryOp(string(last)) {
			g.expression = g.expression[:len(g.expression)-1] + key
			return
		}
		g.expression += key

	case key == "%":
		if g.expression == "" {
			return
		}
		last := g.expression[len(g.expression)-1]
		if last >= '0' && last <= '9' {
			g.expression += key
		}
	}
}

// Clear resets the buffer and any pending result.
func (g *Gate) Clear() {
	g.expression = ""
	g.lastResult = ""
	g.justEvaluated = false
}

// Backspace removes the last entered character.
func (g *Gate) Backspace() {
	if g.justEvaluated {
		g.justEvaluated = false
	}
	if g.expression != "" {
		g.expression = g.expression[:len(g.expression)-1]
	}
}

// Submit evaluates the current buffer. The raw buffer is compared against
// the configured PIN first, verbatim, with no arithmetic attempted; only a
// non-matching buffer is evaluated as an expression. A wrong PIN therefore
// produces exactly the output a malformed expression would.
func (g *Gate) Submit() Result {
	buffer := g.expression
	if buffer == "" {
		return Result{Outcome: OutcomeContinue}
	}

	if g.store.VerifyPin(buffer) {
		g.store.Unlock()
		g.Clear()
		return Result{Outcome: OutcomeUnlocked}
	}

	v, err := Evaluate(buffer)
	if err != nil {
		g.lastResult = ""
		g.justEvaluated = true
		return Result{Outcome: OutcomeEvaluated, Display: errorDisplay, Err: err}
	}

	display := FormatResult(v)
	g.lastResult = display
	g.justEvaluated = true
	return Result{Outcome: OutcomeEvaluated, Display: display}
}

// Relock synchronously flips the store back to Disguised and clears the
// buffer. It performs no storage or network work: an in-flight dispatch is
// left to finish on its own.
func (g *Gate) Relock() {
	g.store.Relock()
	g.Clear()
}
