package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"AI_PROCTOR/go-backend/internal/alerting"
	"AI_PROCTOR/go-backend/internal/config"
	"AI_PROCTOR/go-backend/internal/services"
	"AI_PROCTOR/go-backend/internal/vision"
)

// Sink receives the outbound side effects of frame processing. The
// protocol gateway implements it.
type Sink interface {
	RegistrationResult(sessionID, status string)
	FocusUpdate(sessionID string, score float64)
	Alert(event alerting.AlertEvent)
	SessionTerminated(sessionID string, reason Reason)
}

// Store persists session lifecycles and alert events for the review
// dashboard. A nil Store disables persistence.
type Store interface {
	CreateSession(ctx context.Context, id, clientID string, startedAt time.Time) error
	FinishSession(ctx context.Context, id string, reason string, finalScore float64, warningCount int, endedAt time.Time) error
	SaveAlert(ctx context.Context, event alerting.AlertEvent) error
}

const (
	frameQueueSize = 16
	storeTimeout   = 5 * time.Second

	RegistrationAuthorized = "AUTHORIZED"
	RegistrationFailed     = "FAILED"
)

// Manager owns every active session. Each session gets its own worker
// goroutine so frames from one session are processed strictly FIFO
// while different sessions run in parallel.
type Manager struct {
	cfg     *config.Config
	faces   vision.FaceDetector
	objects vision.ObjectDetector
	sink    Sink
	store   Store
	metrics *services.Metrics

	mu      sync.RWMutex
	runners map[string]*runner
}

func NewManager(cfg *config.Config, faces vision.FaceDetector, objects vision.ObjectDetector, sink Sink, store Store, metrics *services.Metrics) *Manager {
	return &Manager{
		cfg:     cfg,
		faces:   faces,
		objects: objects,
		sink:    sink,
		store:   store,
		metrics: metrics,
		runners: make(map[string]*runner),
	}
}

// StartSession creates a session in CREATED state and spawns its worker.
func (m *Manager) StartSession(clientID string) (string, error) {
	id := uuid.NewString()
	r := newRunner(m, New(id, clientID, time.Now()))

	m.mu.Lock()
	m.runners[id] = r
	m.mu.Unlock()

	m.metrics.SessionStarted()
	if m.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := m.store.CreateSession(ctx, id, clientID, time.Now()); err != nil {
			log.Printf("Failed to persist session %s: %v", id, err)
		}
	}

	go r.loop()

	log.Printf("Session started: %s (client %s)", id, clientID)
	return id, nil
}

// SubmitFrame queues one frame for the session's worker. Frames for
// unknown or terminated sessions are rejected explicitly so the client
// can detect desync.
func (m *Manager) SubmitFrame(sessionID string, frame []byte) error {
	m.mu.RLock()
	r, ok := m.runners[sessionID]
	m.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}
	if r.stopping.Load() {
		return ErrSessionTerminated
	}

	select {
	case r.frames <- frame:
		return nil
	default:
		return ErrQueueFull
	}
}

// EndSession stops frame intake immediately and hands the termination
// reason to the worker. Any detector call already in flight completes
// but its result is discarded.
func (m *Manager) EndSession(sessionID string, reason Reason) error {
	m.mu.RLock()
	r, ok := m.runners[sessionID]
	m.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}
	return r.requestStop(reason)
}

func (m *Manager) ActiveSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.runners)
}

// Shutdown terminates every active session, used on server stop.
func (m *Manager) Shutdown() {
	m.mu.RLock()
	runners := make([]*runner, 0, len(m.runners))
	for _, r := range m.runners {
		runners = append(runners, r)
	}
	m.mu.RUnlock()

	for _, r := range runners {
		r.requestStop(ReasonDisconnected)
	}
}

func (m *Manager) removeRunner(sessionID string) {
	m.mu.Lock()
	delete(m.runners, sessionID)
	m.mu.Unlock()
}

func (m *Manager) saveAlert(event alerting.AlertEvent) {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.store.SaveAlert(ctx, event); err != nil {
		log.Printf("Failed to persist alert %s for session %s: %v", event.Type, event.SessionID, err)
	}
}

func (m *Manager) finishSession(sess *Session) {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	err := m.store.FinishSession(ctx, sess.ID(), string(sess.TerminationReason()),
		sess.Score(), sess.Alerts().WarningCount, time.Now())
	if err != nil {
		log.Printf("Failed to persist termination of session %s: %v", sess.ID(), err)
	}
}
