package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type SessionRecord struct {
	ID                string     `json:"id"`
	UserID            int        `json:"user_id"`
	StartedAt         time.Time  `json:"started_at"`
	EndedAt           *time.Time `json:"ended_at,omitempty"`
	Status            string     `json:"status"`
	TerminationReason string     `json:"termination_reason,omitempty"`
	FinalScore        float64    `json:"final_score"`
	WarningCount      int        `json:"warning_count"`
}

type AlertRecord struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	AlertType string    `json:"alert_type"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
