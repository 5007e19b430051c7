package session

import (
	"errors"
	"fmt"
	"time"

	"AI_PROCTOR/go-backend/internal/alerting"
)

type State string

const (
	StateCreated     State = "CREATED"
	StateRegistering State = "REGISTERING"
	StateMonitoring  State = "MONITORING"
	StateTerminated  State = "TERMINATED"
)

type Reason string

const (
	ReasonUserEnded          Reason = "USER_ENDED"
	ReasonWarningLimit       Reason = "WARNING_LIMIT_EXCEEDED"
	ReasonDisconnected       Reason = "DISCONNECTED"
	ReasonRegistrationFailed Reason = "REGISTRATION_FAILED"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionTerminated = errors.New("session terminated")
	ErrQueueFull         = errors.New("frame queue full")
	ErrAlreadyRegistered = errors.New("session already has a registered embedding")
)

// Session holds one candidate run: lifecycle state, the registered face
// embedding, the current focus score and the alert bookkeeping. All
// fields are mutated only by the session's worker goroutine, so no
// locking is needed inside.
type Session struct {
	id                string
	clientID          string
	state             State
	embedding         []float32
	score             float64
	alerts            *alerting.State
	regAttempts       int
	createdAt         time.Time
	terminationReason Reason
}

func New(id, clientID string, now time.Time) *Session {
	return &Session{
		id:        id,
		clientID:  clientID,
		state:     StateCreated,
		alerts:    alerting.NewState(),
		createdAt: now,
	}
}

func (s *Session) ID() string           { return s.id }
func (s *Session) ClientID() string     { return s.clientID }
func (s *Session) State() State         { return s.state }
func (s *Session) Score() float64       { return s.score }
func (s *Session) Embedding() []float32 { return s.embedding }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) SetScore(score float64) { s.score = score }

func (s *Session) Alerts() *alerting.State { return s.alerts }

func (s *Session) TerminationReason() Reason { return s.terminationReason }

// BeginRegistration moves the session out of CREATED on its first frame.
func (s *Session) BeginRegistration() error {
	if s.state != StateCreated {
		return fmt.Errorf("cannot begin registration from %s", s.state)
	}
	s.state = StateRegistering
	return nil
}

// CompleteRegistration stores the one-time reference embedding and moves
// the session to MONITORING. A session holds at most one embedding;
// repeat registrations are rejected.
func (s *Session) CompleteRegistration(embedding []float32) error {
	if s.embedding != nil {
		return ErrAlreadyRegistered
	}
	if s.state != StateRegistering {
		return fmt.Errorf("cannot complete registration from %s", s.state)
	}
	s.embedding = embedding
	s.score = 100
	s.state = StateMonitoring
	return nil
}

// RegistrationAttempt consumes one registration retry and returns how
// many have been used so far.
func (s *Session) RegistrationAttempt() int {
	s.regAttempts++
	return s.regAttempts
}

// Terminate is absorbing: the first call wins, any later call is an
// error.
func (s *Session) Terminate(reason Reason) error {
	if s.state == StateTerminated {
		return ErrSessionTerminated
	}
	s.state = StateTerminated
	s.terminationReason = reason
	return nil
}
