package devconsole

import (
	"sync"

	"github.com/hyp3rd/ewrap"
)

// ErrInvalidTransition indicates a lifecycle stage entered out of order.
var ErrInvalidTransition = ewrap.New("invalid lifecycle transition")

// Phase is one stage of the host application lifecycle. Instead of hiding
// initialization phases behind host engine callbacks, the lifecycle is an
// explicit state machine the host drives directly.
type Phase uint8

const (
	// PhaseIdle is the initial phase before any initialization.
	PhaseIdle Phase = iota
	// PhaseBootstrap covers core initialization: console, logging, config.
	PhaseBootstrap
	// PhaseSubsystems covers subsystem initialization and command binding.
	PhaseSubsystems
	// PhaseRunning is the steady state.
	PhaseRunning
	// PhaseShutdown covers teardown: flushing logs, releasing resources.
	PhaseShutdown
	// PhaseTerminated is the final phase.
	PhaseTerminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseBootstrap:
		return "Bootstrap"
	case PhaseSubsystems:
		return "Subsystems"
	case PhaseRunning:
		return "Running"
	case PhaseShutdown:
		return "Shutdown"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// QuitReason explains why shutdown was requested. It replaces
// exception-driven "quit with fatal reason" control flow: the lifecycle
// records the reason and the host decides whether to terminate the process.
type QuitReason uint8

const (
	// QuitNone means no shutdown has been requested.
	QuitNone QuitReason = iota
	// QuitRequested means the user or a command asked to quit.
	QuitRequested
	// QuitFatal means an unrecoverable error forced the shutdown.
	QuitFatal
	// QuitHostClosed means the hosting environment is closing.
	QuitHostClosed
)

// String returns the reason name.
func (r QuitReason) String() string {
	switch r {
	case QuitNone:
		return "None"
	case QuitRequested:
		return "Requested"
	case QuitFatal:
		return "Fatal"
	case QuitHostClosed:
		return "HostClosed"
	default:
		return "Unknown"
	}
}

// Hook runs when a phase is entered. A hook error aborts the transition; the
// lifecycle stays in its previous phase.
type Hook func() error

// Lifecycle is a guarded finite state machine over the application phases.
// The forward path is Idle → Bootstrap → Subsystems → Running; Shutdown may
// be entered from any phase before Terminated.
type Lifecycle struct {
	mu         sync.Mutex
	phase      Phase
	quitReason QuitReason
	quitDetail string
	hooks      map[Phase][]Hook
	logger     *Logger
}

// NewLifecycle creates a lifecycle in PhaseIdle. Transitions are logged
// through the given logger; a nil logger uses the process default.
func NewLifecycle(logger *Logger) *Lifecycle {
	if logger == nil {
		logger = Default()
	}

	return &Lifecycle{
		phase:  PhaseIdle,
		hooks:  make(map[Phase][]Hook),
		logger: logger,
	}
}

// Phase returns the current phase.
func (lc *Lifecycle) Phase() Phase {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.phase
}

// QuitReason returns the recorded shutdown reason and detail.
func (lc *Lifecycle) QuitReason() (QuitReason, string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.quitReason, lc.quitDetail
}

// OnEnter registers a hook to run when target is entered. Hooks run in
// registration order while the lifecycle lock is held.
func (lc *Lifecycle) OnEnter(target Phase, hook Hook) {
	if hook == nil {
		return
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.hooks[target] = append(lc.hooks[target], hook)
}

// Advance moves the lifecycle into target. Only the immediate next forward
// phase is accepted; out-of-order entry fails with ErrInvalidTransition and
// leaves the phase unchanged. Shutdown phases are entered through Shutdown.
func (lc *Lifecycle) Advance(target Phase) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if target > PhaseRunning || target != lc.phase+1 {
		return ewrap.Wrap(ErrInvalidTransition, "cannot advance").
			WithMetadata("from", lc.phase.String()).
			WithMetadata("to", target.String())
	}

	return lc.enterLocked(target)
}

// Shutdown records the quit reason and moves to PhaseShutdown, then
// PhaseTerminated. It may be called from any phase; calling it again after
// termination is a no-op. The host inspects QuitReason to decide whether and
// how to terminate the process.
func (lc *Lifecycle) Shutdown(reason QuitReason, detail string) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.phase >= PhaseShutdown {
		return nil
	}

	lc.quitReason = reason
	lc.quitDetail = detail

	lc.logger.Infof("shutdown requested: %s (%s)", reason, detail)

	err := lc.enterLocked(PhaseShutdown)
	if err != nil {
		return err
	}

	return lc.enterLocked(PhaseTerminated)
}

func (lc *Lifecycle) enterLocked(target Phase) error {
	for _, hook := range lc.hooks[target] {
		err := hook()
		if err != nil {
			return ewrap.Wrapf(err, "entering phase %s", target)
		}
	}

	previous := lc.phase
	lc.phase = target

	lc.logger.Debugf("lifecycle: %s -> %s", previous, target)

	return nil
}
