package database

import (
	"context"
	"database/sql"
	"time"

	"AI_PROCTOR/go-backend/internal/alerting"
	"AI_PROCTOR/go-backend/internal/models"
)

// SessionStore implements session.Store on the shared DB handle.
type SessionStore struct{}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) CreateSession(ctx context.Context, id, clientID string, startedAt time.Time) error {
	_, err := DB.ExecContext(ctx,
		"INSERT INTO exam_sessions (id, client_id, started_at, status) VALUES ($1, $2, $3, 'active')",
		id, clientID, startedAt,
	)
	return err
}

func (s *SessionStore) FinishSession(ctx context.Context, id string, reason string, finalScore float64, warningCount int, endedAt time.Time) error {
	_, err := DB.ExecContext(ctx,
		`UPDATE exam_sessions
		 SET ended_at = $1, status = 'terminated', termination_reason = $2,
		     final_score = $3, warning_count = $4
		 WHERE id = $5`,
		endedAt, reason, finalScore, warningCount, id,
	)
	return err
}

func (s *SessionStore) SaveAlert(ctx context.Context, event alerting.AlertEvent) error {
	_, err := DB.ExecContext(ctx,
		"INSERT INTO alert_events (session_id, alert_type, severity, created_at) VALUES ($1, $2, $3, $4)",
		event.SessionID, string(event.Type), string(event.Severity), event.Timestamp,
	)
	return err
}

func ListSessions(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	rows, err := DB.QueryContext(ctx,
		`SELECT id, started_at, ended_at, status, termination_reason, final_score, warning_count
		 FROM exam_sessions ORDER BY started_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.SessionRecord
	for rows.Next() {
		var rec models.SessionRecord
		var endedAt sql.NullTime
		var reason sql.NullString
		err := rows.Scan(&rec.ID, &rec.StartedAt, &endedAt, &rec.Status,
			&reason, &rec.FinalScore, &rec.WarningCount)
		if err != nil {
			continue
		}
		if endedAt.Valid {
			rec.EndedAt = &endedAt.Time
		}
		if reason.Valid {
			rec.TerminationReason = reason.String
		}
		sessions = append(sessions, rec)
	}
	return sessions, rows.Err()
}

func ListAlerts(ctx context.Context, sessionID string) ([]models.AlertRecord, error) {
	rows, err := DB.QueryContext(ctx,
		`SELECT id, session_id, alert_type, severity, created_at
		 FROM alert_events WHERE session_id = $1 ORDER BY created_at DESC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.AlertRecord
	for rows.Next() {
		var rec models.AlertRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.AlertType, &rec.Severity, &rec.CreatedAt); err != nil {
			continue
		}
		alerts = append(alerts, rec)
	}
	return alerts, rows.Err()
}
