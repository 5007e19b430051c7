package models

import "time"

type FramePayload struct {
	SessionID string `json:"session_id"`
	Frame     string `json:"frame"`
}

type EndSessionPayload struct {
	SessionID string `json:"session_id"`
}

type SessionStartedPayload struct {
	SessionID string `json:"session_id"`
}

type RegistrationResultPayload struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

type FocusUpdatePayload struct {
	SessionID string  `json:"session_id"`
	Score     float64 `json:"score"`
}

type AlertPayload struct {
	SessionID string `json:"session_id"`
	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Timestamp int64  `json:"timestamp"`
}

type SessionTerminatedPayload struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	Code      string `json:"code,omitempty"`
}

type HealthStatus struct {
	Status         string        `json:"status"`
	GoBackend      string        `json:"go_backend"`
	VisionService  bool          `json:"vision_service"`
	ActiveSessions int           `json:"active_sessions"`
	Uptime         time.Duration `json:"uptime"`
	Version        string        `json:"version,omitempty"`
}
