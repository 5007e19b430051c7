package alerting

import (
	"time"

	"AI_PROCTOR/go-backend/internal/identity"
	"AI_PROCTOR/go-backend/internal/signal"
)

type AlertType string

const (
	AlertLookingAway      AlertType = "LOOKING_AWAY"
	AlertPhoneDetected    AlertType = "PHONE_DETECTED"
	AlertMultipleFaces    AlertType = "MULTIPLE_FACES"
	AlertUnauthorizedUser AlertType = "UNAUTHORIZED_USER"
)

type Severity string

const (
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// AlertEvent is an immutable record of one emitted alert.
type AlertEvent struct {
	SessionID string
	Type      AlertType
	Severity  Severity
	Timestamp time.Time
}

// State is the per-session alert bookkeeping: last emission time per
// alert type and the monotonically increasing warning count. It is
// owned by the session and mutated only by Evaluate.
type State struct {
	LastFired    map[AlertType]time.Time
	WarningCount int
}

func NewState() *State {
	return &State{LastFired: make(map[AlertType]time.Time)}
}

// Engine maps signal conditions to alert events, applies per-type
// cooldowns and counts warnings toward the termination limit.
type Engine struct {
	focusThreshold float64
	phoneConf      float64
	cooldown       time.Duration
	warningLimit   int
}

func NewEngine(focusThreshold, phoneConf float64, cooldown time.Duration, warningLimit int) *Engine {
	return &Engine{
		focusThreshold: focusThreshold,
		phoneConf:      phoneConf,
		cooldown:       cooldown,
		warningLimit:   warningLimit,
	}
}

// Evaluate runs the rule table for one frame in fixed priority order.
// Each alert type fires independently. Cooldown timestamps are updated
// at emission time, and every CRITICAL emission increments the warning
// count by exactly one. The returned bool instructs the session to
// terminate because the warning limit was reached.
func (e *Engine) Evaluate(sessionID string, st *State, sig signal.FrameSignal, score float64, match identity.Result, now time.Time) ([]AlertEvent, bool) {
	var events []AlertEvent

	emit := func(t AlertType, sev Severity) {
		last, fired := st.LastFired[t]
		if fired && now.Sub(last) < e.cooldown {
			return
		}
		st.LastFired[t] = now
		events = append(events, AlertEvent{
			SessionID: sessionID,
			Type:      t,
			Severity:  sev,
			Timestamp: now,
		})
		if sev == SeverityCritical {
			st.WarningCount++
		}
	}

	if score < e.focusThreshold {
		emit(AlertLookingAway, SeverityWarning)
	}
	if e.phonePresent(sig) {
		emit(AlertPhoneDetected, SeverityCritical)
	}
	if sig.FaceCount > 1 {
		emit(AlertMultipleFaces, SeverityCritical)
	}
	if match == identity.Mismatch {
		emit(AlertUnauthorizedUser, SeverityCritical)
	}

	return events, st.WarningCount >= e.warningLimit
}

func (e *Engine) phonePresent(sig signal.FrameSignal) bool {
	if !sig.ObjectsChecked {
		return false
	}
	for _, obj := range sig.Objects {
		if obj.Label == "phone" && float64(obj.Confidence) >= e.phoneConf {
			return true
		}
	}
	return false
}
