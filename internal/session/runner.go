package session

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"AI_PROCTOR/go-backend/internal/alerting"
	"AI_PROCTOR/go-backend/internal/focus"
	"AI_PROCTOR/go-backend/internal/identity"
	"AI_PROCTOR/go-backend/internal/signal"
)

// runner is the per-session worker. It is the only goroutine that
// touches the Session, which keeps the whole pipeline lock-free within
// a session while separate sessions run concurrently.
type runner struct {
	m    *Manager
	sess *Session

	adapter  *signal.Adapter
	focus    *focus.Engine
	verifier *identity.Verifier
	alerts   *alerting.Engine

	frames   chan []byte
	stopCh   chan Reason
	stopping atomic.Bool
	stopOnce sync.Once
}

func newRunner(m *Manager, sess *Session) *runner {
	return &runner{
		m:        m,
		sess:     sess,
		adapter:  signal.NewAdapter(m.faces, m.objects, m.cfg.ObjectDetectEvery),
		focus:    focus.NewEngine(m.cfg.FocusAlpha),
		verifier: identity.NewVerifier(m.cfg.IdentityThreshold),
		alerts: alerting.NewEngine(m.cfg.FocusAlertThreshold, m.cfg.PhoneConfThreshold,
			m.cfg.AlertCooldown, m.cfg.WarningLimit),
		frames: make(chan []byte, frameQueueSize),
		stopCh: make(chan Reason, 1),
	}
}

// requestStop flips the intake gate exactly once and delivers the
// termination reason to the worker. Later callers get
// ErrSessionTerminated.
func (r *runner) requestStop(reason Reason) error {
	if !r.stopping.CompareAndSwap(false, true) {
		return ErrSessionTerminated
	}
	r.stopCh <- reason
	return nil
}

func (r *runner) loop() {
	for {
		select {
		case reason := <-r.stopCh:
			r.finish(reason)
			return
		case frame := <-r.frames:
			if r.stopping.Load() {
				// Stop already requested, drop the queued frame.
				continue
			}
			if done, reason := r.processFrame(frame); done {
				if !r.stopping.CompareAndSwap(false, true) {
					// An external stop raced us; its reason wins on the
					// next loop iteration.
					continue
				}
				r.finish(reason)
				return
			}
		}
	}
}

func (r *runner) finish(reason Reason) {
	if err := r.sess.Terminate(reason); err != nil {
		return
	}
	r.m.removeRunner(r.sess.ID())
	r.m.metrics.SessionTerminated()
	r.m.sink.SessionTerminated(r.sess.ID(), reason)
	r.m.finishSession(r.sess)
	log.Printf("Session %s terminated: %s", r.sess.ID(), reason)
}

// processFrame runs one frame through the adapt/focus/verify/alert
// pipeline. The returned bool reports that the session must terminate
// with the given reason.
func (r *runner) processFrame(frame []byte) (bool, Reason) {
	start := time.Now()
	ctx := context.Background()

	if r.sess.State() == StateCreated {
		if err := r.sess.BeginRegistration(); err != nil {
			log.Printf("Session %s: %v", r.sess.ID(), err)
			return false, ""
		}
	}

	if r.sess.State() == StateRegistering {
		return r.registerFrame(ctx, frame)
	}

	sig, err := r.adapter.Adapt(ctx, frame, time.Now())
	if err != nil {
		// Detector failure is an indeterminate frame, never an alert.
		log.Printf("Session %s frame indeterminate: %v", r.sess.ID(), err)
		r.m.metrics.IncrementErrors()
		return false, ""
	}
	if r.stopping.Load() {
		// Session ended while the detectors were running; discard.
		return false, ""
	}

	score := r.focus.Update(r.sess.Score(), sig)
	r.sess.SetScore(score)
	r.m.sink.FocusUpdate(r.sess.ID(), score)

	match := r.verifier.Verify(r.sess.Embedding(), sig.Embedding)

	events, limitReached := r.alerts.Evaluate(r.sess.ID(), r.sess.Alerts(), sig, score, match, sig.Timestamp)
	for _, event := range events {
		log.Printf("Session %s alert: %s (%s)", r.sess.ID(), event.Type, event.Severity)
		r.m.sink.Alert(event)
		r.m.metrics.IncrementAlerts()
		r.m.saveAlert(event)
	}

	r.m.metrics.IncrementFrames()
	r.m.metrics.RecordLatency(time.Since(start))

	if limitReached {
		return true, ReasonWarningLimit
	}
	return false, ""
}

// registerFrame attempts the one-time registration: exactly one face
// with an embedding authorizes the candidate; anything else consumes a
// retry. Detector failures do not count against the budget.
func (r *runner) registerFrame(ctx context.Context, frame []byte) (bool, Reason) {
	sig, err := r.adapter.Adapt(ctx, frame, time.Now())
	if err != nil {
		log.Printf("Session %s registration frame indeterminate: %v", r.sess.ID(), err)
		r.m.metrics.IncrementErrors()
		return false, ""
	}
	if r.stopping.Load() {
		return false, ""
	}

	if sig.FaceCount == 1 && len(sig.Embedding) > 0 {
		if err := r.sess.CompleteRegistration(sig.Embedding); err != nil {
			log.Printf("Session %s: %v", r.sess.ID(), err)
			return false, ""
		}
		r.m.sink.RegistrationResult(r.sess.ID(), RegistrationAuthorized)
		r.m.sink.FocusUpdate(r.sess.ID(), r.sess.Score())
		log.Printf("Session %s registered, monitoring", r.sess.ID())
		return false, ""
	}

	attempts := r.sess.RegistrationAttempt()
	log.Printf("Session %s registration attempt %d rejected: %d faces",
		r.sess.ID(), attempts, sig.FaceCount)

	if attempts >= r.m.cfg.RegistrationRetries {
		r.m.sink.RegistrationResult(r.sess.ID(), RegistrationFailed)
		return true, ReasonRegistrationFailed
	}
	return false, ""
}
