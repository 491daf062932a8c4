package page

import (
	"context"
	"errors"
	"net/http"

	"go-hris-web/internal/shared/apperror"

	"go.uber.org/zap"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

var (
	// ErrBusy: another load or write holds the page for this session.
	ErrBusy = apperror.New(
		apperror.CodeInvalidState,
		"Another action is still in progress",
		http.StatusConflict,
	)
	ErrInvalidTransition = errors.New("page: begin called while already loading")
	// ErrViewClosed: the client left before the result arrived; nothing may be rendered.
	ErrViewClosed = errors.New("page: view closed before result arrived")
)

// Machine tracks the phase of one page view. Entering Loading takes the
// session-wide busy lock for the view, so a second tab (or a double submit)
// cannot start an overlapping load or write.
type Machine struct {
	tracker Tracker
	key     string
	token   string
	phase   Phase
	logger  *zap.Logger
}

func NewMachine(tracker Tracker, view, sessionID string, logger ...*zap.Logger) *Machine {
	l := zap.L().Named("page.machine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("page.machine")
	}
	return &Machine{
		tracker: tracker,
		key:     view + ":" + sessionID,
		phase:   PhaseIdle,
		logger:  l,
	}
}

func (m *Machine) Phase() Phase {
	return m.phase
}

func (m *Machine) Begin(ctx context.Context) error {
	if m.phase == PhaseLoading {
		return ErrInvalidTransition
	}

	token, ok, err := m.tracker.Acquire(ctx, m.key)
	if err != nil {
		m.logger.Error("acquire page lock failed", zap.String("key", m.key), zap.Error(err))
		return apperror.ErrUpstreamUnavailable.WithCause(err)
	}
	if !ok {
		m.logger.Debug("page busy", zap.String("key", m.key))
		return ErrBusy
	}

	m.token = token
	m.phase = PhaseLoading
	return nil
}

// End leaves Loading. The lock is released even when ctx is already cancelled,
// and only if this machine still owns it.
func (m *Machine) End(ctx context.Context, err error) {
	if m.phase != PhaseLoading {
		return
	}

	if relErr := m.tracker.Release(context.WithoutCancel(ctx), m.key, m.token); relErr != nil {
		m.logger.Warn("release page lock failed", zap.String("key", m.key), zap.Error(relErr))
	}

	m.token = ""

	if err != nil {
		m.phase = PhaseError
		return
	}
	m.phase = PhaseReady
}
