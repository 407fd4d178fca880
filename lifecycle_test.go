package devconsole

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLifecycle(t *testing.T) (*Lifecycle, *Logger) {
	t.Helper()

	logger := newTestLogger(t, TraceLevel, 64)

	return NewLifecycle(logger), logger
}

func TestLifecycleStartsIdle(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	assert.Equal(t, PhaseIdle, lc.Phase())

	reason, detail := lc.QuitReason()
	assert.Equal(t, QuitNone, reason)
	assert.Empty(t, detail)
}

func TestLifecycleForwardPath(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	require.NoError(t, lc.Advance(PhaseBootstrap))
	require.NoError(t, lc.Advance(PhaseSubsystems))
	require.NoError(t, lc.Advance(PhaseRunning))

	assert.Equal(t, PhaseRunning, lc.Phase())
}

func TestLifecycleRejectsSkippedPhases(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	err := lc.Advance(PhaseRunning)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, PhaseIdle, lc.Phase(), "a rejected transition leaves the phase unchanged")
}

func TestLifecycleRejectsBackwardTransitions(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	require.NoError(t, lc.Advance(PhaseBootstrap))
	require.NoError(t, lc.Advance(PhaseSubsystems))

	err := lc.Advance(PhaseBootstrap)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, PhaseSubsystems, lc.Phase())
}

func TestLifecycleRejectsAdvanceIntoShutdown(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	require.NoError(t, lc.Advance(PhaseBootstrap))
	require.NoError(t, lc.Advance(PhaseSubsystems))
	require.NoError(t, lc.Advance(PhaseRunning))

	err := lc.Advance(PhaseShutdown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition), "shutdown is entered through Shutdown, not Advance")
}

func TestLifecycleShutdown(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	require.NoError(t, lc.Advance(PhaseBootstrap))
	require.NoError(t, lc.Shutdown(QuitRequested, "quit command"))

	assert.Equal(t, PhaseTerminated, lc.Phase())

	reason, detail := lc.QuitReason()
	assert.Equal(t, QuitRequested, reason)
	assert.Equal(t, "quit command", detail)
}

func TestLifecycleShutdownFromIdle(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	require.NoError(t, lc.Shutdown(QuitHostClosed, "window closed"))
	assert.Equal(t, PhaseTerminated, lc.Phase())
}

func TestLifecycleShutdownIsIdempotent(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	require.NoError(t, lc.Shutdown(QuitFatal, "first"))
	require.NoError(t, lc.Shutdown(QuitRequested, "second"))

	reason, detail := lc.QuitReason()
	assert.Equal(t, QuitFatal, reason, "the first recorded reason wins")
	assert.Equal(t, "first", detail)
}

func TestLifecycleHooksRunInOrder(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	var order []string

	lc.OnEnter(PhaseBootstrap, func() error {
		order = append(order, "first")

		return nil
	})
	lc.OnEnter(PhaseBootstrap, func() error {
		order = append(order, "second")

		return nil
	})

	require.NoError(t, lc.Advance(PhaseBootstrap))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestLifecycleHookErrorAbortsTransition(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	lc.OnEnter(PhaseBootstrap, func() error {
		return errors.New("subsystem refused")
	})

	err := lc.Advance(PhaseBootstrap)
	require.Error(t, err)
	assert.Equal(t, PhaseIdle, lc.Phase())
}

func TestLifecycleShutdownHooks(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	var entered []Phase

	lc.OnEnter(PhaseShutdown, func() error {
		entered = append(entered, PhaseShutdown)

		return nil
	})
	lc.OnEnter(PhaseTerminated, func() error {
		entered = append(entered, PhaseTerminated)

		return nil
	})

	require.NoError(t, lc.Shutdown(QuitRequested, "done"))
	assert.Equal(t, []Phase{PhaseShutdown, PhaseTerminated}, entered)
}

func TestLifecycleLogsTransitions(t *testing.T) {
	lc, logger := newTestLifecycle(t)

	require.NoError(t, lc.Advance(PhaseBootstrap))

	entries := logger.Entries()
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[len(entries)-1].Content, "Idle -> Bootstrap")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Idle", PhaseIdle.String())
	assert.Equal(t, "Running", PhaseRunning.String())
	assert.Equal(t, "Terminated", PhaseTerminated.String())
	assert.Equal(t, "Unknown", Phase(200).String())
}

func TestQuitReasonString(t *testing.T) {
	assert.Equal(t, "None", QuitNone.String())
	assert.Equal(t, "Requested", QuitRequested.String())
	assert.Equal(t, "Fatal", QuitFatal.String())
	assert.Equal(t, "HostClosed", QuitHostClosed.String())
	assert.Equal(t, "Unknown", QuitReason(200).String())
}
