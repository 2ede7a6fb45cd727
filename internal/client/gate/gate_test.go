package gate

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenotes/safenotes/internal/client/repositories/kv"
	"github.com/safenotes/safenotes/internal/client/state"
	"github.com/safenotes/safenotes/internal/logging"
)

func newGate(t *testing.T) (*Gate, *state.Store) {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store, err := state.New(context.Background(), kv.NewMemoryRepository(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return New(store), store
}

func press(g *Gate, keys ...string) {
	for _, k := range keys {
		g.Press(k)
	}
}

func TestSubmit_ExactPinUnlocks(t *testing.T) {
	g, store := newGate(t)

	press(g, "1", "2", "3", "4")
	res := g.Submit()

	assert.Equal(t, OutcomeUnlocked, res.Outcome)
	assert.True(t, store.IsUnlocked())
	assert.Empty(t, g.Expression())
}

func TestSubmit_NearMissEvaluatesAsArithmetic(t *testing.T) {
	g, store := newGate(t)

	// one character off the PIN: plain number, evaluates to itself
	press(g, "1", "2", "3", "5")
	res := g.Submit()

	assert.Equal(t, OutcomeEvaluated, res.Outcome)
	assert.Equal(t, "1235", res.Display)
	assert.False(t, store.IsUnlocked())
}

func TestSubmit_Arithmetic(t *testing.T) {
	g, store := newGate(t)

	press(g, "1", "2", "+", "3", "4")
	res := g.Submit()

	assert.Equal(t, OutcomeEvaluated, res.Outcome)
	assert.Equal(t, "46", res.Display)
	assert.False(t, store.IsUnlocked())
}

func TestSubmit_DivisionByZeroShowsError(t *testing.T) {
	g, _ := newGate(t)

	press(g, "5", "/", "0")
	res := g.Submit()

	assert.Equal(t, OutcomeEvaluated, res.Outcome)
	assert.Equal(t, "Error", res.Display)
	assert.ErrorIs(t, res.Err, ErrDivisionByZero)
}

func TestSubmit_TrailingOperatorShowsError(t *testing.T) {
	g, _ := newGate(t)

	press(g, "7", "+")
	res := g.Submit()

	assert.Equal(t, "Error", res.Display)
	assert.ErrorIs(t, res.Err, ErrIncompleteExpression)
}

func TestSubmit_EmptyBufferContinues(t *testing.T) {
	g, _ := newGate(t)
	assert.Equal(t, OutcomeContinue, g.Submit().Outcome)
}

func TestPress_LeadingZeroChainingSuppressed(t *testing.T) {
	g, _ := newGate(t)

	press(g, "0", "5")
	assert.Equal(t, "0", g.Expression())

	press(g, ".", "5")
	assert.Equal(t, "0.5", g.Expression())
}

func TestPress_SingleDecimalPointPerOperand(t *testing.T) {
	g, _ := newGate(t)

	press(g, "1", ".", "5", ".", "2")
	assert.Equal(t, "1.52", g.Expression())

	press(g, "+", ".", "5")
	assert.Equal(t, "1.52+0.5", g.Expression())
}

func TestPress_ConsecutiveOperatorsCollapse(t *testing.T) {
	g, _ := newGate(t)

	press(g, "5", "+", "-", "*")
	assert.Equal(t, "5*", g.Expression())

	press(g, "2")
	assert.Equal(t, "5*2", g.Expression())
}

func TestPress_ChainsFromLastResult(t *testing.T) {
	g, _ := newGate(t)

	press(g, "1", "2", "+", "3", "4")
	require.Equal(t, "46", g.Submit().Display)

	// operator continues from the result, digit starts fresh
	press(g, "+", "4")
	assert.Equal(t, "46+4", g.Expression())
	assert.Equal(t, "50", g.Submit().Display)

	press(g, "9")
	assert.Equal(t, "9", g.Expression())
}

func TestBackspaceAndClear(t *testing.T) {
	g, _ := newGate(t)

	press(g, "1", "2", "3")
	g.Backspace()
	assert.Equal(t, "12", g.Expression())

	g.Clear()
	assert.Empty(t, g.Expression())

	g.Backspace() // no-op on empty buffer
	assert.Empty(t, g.Expression())
}

func TestPress_PercentOnlyAfterDigit(t *testing.T) {
	g, _ := newGate(t)

	press(g, "%", "5", "0", "%")
	assert.Equal(t, "50%", g.Expression())
	assert.Equal(t, "0.5", g.Submit().Display)
}

func TestRelock_SynchronouslyFlipsState(t *testing.T) {
	g, store := newGate(t)

	press(g, "1", "2", "3", "4")
	require.Equal(t, OutcomeUnlocked, g.Submit().Outcome)
	require.True(t, store.IsUnlocked())

	press(g, "9", "9")
	g.Relock()

	assert.False(t, store.IsUnlocked())
	assert.Empty(t, g.Expression())
}

func TestNoLockoutAfterRepeatedWrongPins(t *testing.T) {
	g, store := newGate(t)

	for range 10 {
		press(g, "9", "9", "9", "9")
		res := g.Submit()
		assert.Equal(t, OutcomeEvaluated, res.Outcome)
		g.Clear()
	}

	press(g, "1", "2", "3", "4")
	assert.Equal(t, OutcomeUnlocked, g.Submit().Outcome)
	assert.True(t, store.IsUnlocked())
}
