package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionStartsCreated(t *testing.T) {
	now := time.Now()
	s := New("sess-1", "client-1", now)

	assert.Equal(t, "sess-1", s.ID())
	assert.Equal(t, "client-1", s.ClientID())
	assert.Equal(t, StateCreated, s.State())
	assert.Equal(t, now, s.CreatedAt())
	assert.Nil(t, s.Embedding())
	assert.Equal(t, 0.0, s.Score())
}

func TestRegistrationLifecycle(t *testing.T) {
	s := New("sess-1", "client-1", time.Now())

	require.NoError(t, s.BeginRegistration())
	assert.Equal(t, StateRegistering, s.State())

	require.NoError(t, s.CompleteRegistration([]float32{1, 2, 3}))
	assert.Equal(t, StateMonitoring, s.State())
	assert.Equal(t, []float32{1, 2, 3}, s.Embedding())
	assert.Equal(t, 100.0, s.Score(), "registration seeds a full focus score")
}

func TestBeginRegistrationOnlyFromCreated(t *testing.T) {
	s := New("sess-1", "client-1", time.Now())
	require.NoError(t, s.BeginRegistration())

	assert.Error(t, s.BeginRegistration())
}

func TestCompleteRegistrationRequiresRegistering(t *testing.T) {
	s := New("sess-1", "client-1", time.Now())

	assert.Error(t, s.CompleteRegistration([]float32{1}))
}

func TestSecondEmbeddingRejected(t *testing.T) {
	s := New("sess-1", "client-1", time.Now())
	require.NoError(t, s.BeginRegistration())
	require.NoError(t, s.CompleteRegistration([]float32{1}))

	err := s.CompleteRegistration([]float32{2})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, []float32{1}, s.Embedding(), "the first embedding is immutable")
}

func TestRegistrationAttemptCounts(t *testing.T) {
	s := New("sess-1", "client-1", time.Now())

	assert.Equal(t, 1, s.RegistrationAttempt())
	assert.Equal(t, 2, s.RegistrationAttempt())
	assert.Equal(t, 3, s.RegistrationAttempt())
}

func TestTerminateIsAbsorbing(t *testing.T) {
	s := New("sess-1", "client-1", time.Now())
	require.NoError(t, s.BeginRegistration())

	require.NoError(t, s.Terminate(ReasonUserEnded))
	assert.Equal(t, StateTerminated, s.State())
	assert.Equal(t, ReasonUserEnded, s.TerminationReason())

	err := s.Terminate(ReasonDisconnected)
	assert.ErrorIs(t, err, ErrSessionTerminated)
	assert.Equal(t, ReasonUserEnded, s.TerminationReason(), "the first reason wins")
}

func TestTerminateFromAnyLiveState(t *testing.T) {
	for _, setup := range []func(*Session){
		func(s *Session) {},
		func(s *Session) { s.BeginRegistration() },
		func(s *Session) {
			s.BeginRegistration()
			s.CompleteRegistration([]float32{1})
		},
	} {
		s := New("sess-1", "client-1", time.Now())
		setup(s)
		assert.NoError(t, s.Terminate(ReasonDisconnected))
		assert.Equal(t, StateTerminated, s.State())
	}
}
