package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI_PROCTOR/go-backend/internal/identity"
	"AI_PROCTOR/go-backend/internal/signal"
	"AI_PROCTOR/go-backend/internal/vision"
)

const sessionID = "sess-1"

func newTestEngine() *Engine {
	return NewEngine(40, 0.50, 5*time.Second, 5)
}

func cleanFrame() signal.FrameSignal {
	return signal.FrameSignal{FacePresent: true, FaceCount: 1, ObjectsChecked: true}
}

func phoneFrame(conf float32) signal.FrameSignal {
	return signal.FrameSignal{
		FacePresent:    true,
		FaceCount:      1,
		ObjectsChecked: true,
		Objects:        []vision.DetectedObject{{Label: "phone", Confidence: conf}},
	}
}

func TestNoAlertsOnCleanFrame(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	events, terminate := e.Evaluate(sessionID, st, cleanFrame(), 95, identity.Match, time.Now())
	assert.Empty(t, events)
	assert.False(t, terminate)
	assert.Equal(t, 0, st.WarningCount)
}

func TestLowFocusEmitsWarning(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	events, terminate := e.Evaluate(sessionID, st, cleanFrame(), 39.9, identity.Match, time.Now())
	require.Len(t, events, 1)
	assert.Equal(t, AlertLookingAway, events[0].Type)
	assert.Equal(t, SeverityWarning, events[0].Severity)
	assert.False(t, terminate)
	assert.Equal(t, 0, st.WarningCount, "WARNING severity never increments the warning count")
}

func TestCooldownSuppressesRepeats(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	now := time.Now()

	// Three phone frames inside one cooldown window: exactly one alert
	// and one warning increment.
	var total int
	for i := 0; i < 3; i++ {
		events, _ := e.Evaluate(sessionID, st, phoneFrame(0.9), 90, identity.Match, now.Add(time.Duration(i)*time.Second))
		total += len(events)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, st.WarningCount)

	// Past the window it fires again.
	events, _ := e.Evaluate(sessionID, st, phoneFrame(0.9), 90, identity.Match, now.Add(6*time.Second))
	require.Len(t, events, 1)
	assert.Equal(t, AlertPhoneDetected, events[0].Type)
	assert.Equal(t, 2, st.WarningCount)
}

func TestCooldownIsPerAlertType(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	now := time.Now()

	// A phone alert does not cool down the multiple-faces rule.
	events, _ := e.Evaluate(sessionID, st, phoneFrame(0.9), 90, identity.Match, now)
	require.Len(t, events, 1)

	sig := phoneFrame(0.9)
	sig.FaceCount = 3
	events, _ = e.Evaluate(sessionID, st, sig, 90, identity.Match, now.Add(time.Second))
	require.Len(t, events, 1)
	assert.Equal(t, AlertMultipleFaces, events[0].Type)
	assert.Equal(t, 2, st.WarningCount)
}

func TestMultipleTypesFireFromOneFrame(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	sig := phoneFrame(0.9)
	sig.FaceCount = 2
	events, _ := e.Evaluate(sessionID, st, sig, 20, identity.Mismatch, time.Now())

	require.Len(t, events, 4)
	assert.Equal(t, AlertLookingAway, events[0].Type)
	assert.Equal(t, AlertPhoneDetected, events[1].Type)
	assert.Equal(t, AlertMultipleFaces, events[2].Type)
	assert.Equal(t, AlertUnauthorizedUser, events[3].Type)
	assert.Equal(t, 3, st.WarningCount, "three CRITICAL alerts, one WARNING")
}

func TestPhoneBelowConfidenceIgnored(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	events, _ := e.Evaluate(sessionID, st, phoneFrame(0.3), 90, identity.Match, time.Now())
	assert.Empty(t, events)
}

func TestUncheckedObjectsAssertNothing(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	// Frames where the object detector was skipped must not reuse a
	// prior frame's phone verdict.
	sig := phoneFrame(0.9)
	sig.ObjectsChecked = false
	events, _ := e.Evaluate(sessionID, st, sig, 90, identity.Match, time.Now())
	assert.Empty(t, events)
}

func TestIndeterminateMatchIsNotMismatch(t *testing.T) {
	e := newTestEngine()
	st := NewState()

	events, _ := e.Evaluate(sessionID, st, cleanFrame(), 90, identity.Indeterminate, time.Now())
	assert.Empty(t, events)
}

func TestWarningLimitTriggersTermination(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	now := time.Now()

	// Five CRITICAL alerts, each past its own cooldown; the fifth must
	// carry the termination instruction.
	for i := 0; i < 5; i++ {
		events, terminate := e.Evaluate(sessionID, st, phoneFrame(0.9), 90, identity.Match, now.Add(time.Duration(i)*6*time.Second))
		require.Len(t, events, 1)
		if i < 4 {
			assert.False(t, terminate, "no termination before the limit (alert %d)", i+1)
		} else {
			assert.True(t, terminate, "termination exactly at the limit")
		}
	}
	assert.Equal(t, 5, st.WarningCount)
}

func TestWarningCountMonotonic(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	now := time.Now()

	last := 0
	for i := 0; i < 8; i++ {
		sig := cleanFrame()
		if i%2 == 0 {
			sig = phoneFrame(0.9)
		}
		e.Evaluate(sessionID, st, sig, 90, identity.Match, now.Add(time.Duration(i)*7*time.Second))
		assert.GreaterOrEqual(t, st.WarningCount, last)
		last = st.WarningCount
	}
}

func TestSustainedDistractionScenario(t *testing.T) {
	e := newTestEngine()
	st := NewState()
	now := time.Now()

	// Five consecutive low-focus frames 200ms apart: one LOOKING_AWAY,
	// not five.
	var total int
	for i := 0; i < 5; i++ {
		events, _ := e.Evaluate(sessionID, st, cleanFrame(), 25, identity.Match, now.Add(time.Duration(i)*200*time.Millisecond))
		total += len(events)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, st.WarningCount)
}
