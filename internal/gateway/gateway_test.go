package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI_PROCTOR/go-backend/internal/config"
	"AI_PROCTOR/go-backend/internal/models"
	"AI_PROCTOR/go-backend/internal/services"
	"AI_PROCTOR/go-backend/internal/session"
	"AI_PROCTOR/go-backend/internal/vision"
)

type stubFaces struct{}

func (stubFaces) DetectFaces(ctx context.Context, image []byte) ([]vision.Face, error) {
	return []vision.Face{{Embedding: []float32{1, 0, 0}, Yaw: 1, Pitch: 1, GazeOffset: 0.05}}, nil
}

type stubObjects struct{}

func (stubObjects) DetectObjects(ctx context.Context, image []byte) ([]vision.DetectedObject, error) {
	return nil, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *Gateway) {
	t.Helper()

	cfg := &config.Config{
		FocusAlpha:          0.25,
		FocusAlertThreshold: 40,
		IdentityThreshold:   0.40,
		PhoneConfThreshold:  0.50,
		AlertCooldown:       5 * time.Second,
		WarningLimit:        5,
		RegistrationRetries: 3,
		ObjectDetectEvery:   1,
	}

	gw := New(services.NewMetrics())
	manager := session.NewManager(cfg, stubFaces{}, stubObjects{}, gw, nil, services.NewMetrics())
	gw.BindManager(manager)

	srv := httptest.NewServer(http.HandlerFunc(gw.HandleWebSocket))
	t.Cleanup(func() {
		manager.Shutdown()
		srv.Close()
	})
	return srv, gw
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil skips interleaved pushes (focus updates and the like) until
// a message of the wanted type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, msgType string) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var msg Message
		require.NoError(t, conn.ReadJSON(&msg), "waiting for %s", msgType)
		if msg.Type == msgType {
			return msg
		}
	}
}

func sendMsg(t *testing.T, conn *websocket.Conn, msgType string, payload interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      msgType,
		"payload":   json.RawMessage(raw),
		"timestamp": time.Now().Unix(),
	}))
}

func TestWelcomeOnConnect(t *testing.T) {
	srv, gw := newTestServer(t)
	conn := dial(t, srv)

	msg := readUntil(t, conn, "WELCOME")
	assert.NotEmpty(t, msg.ClientID)
	assert.Equal(t, 1, gw.ActiveClients())
}

func TestPingPong(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readUntil(t, conn, "WELCOME")

	sendMsg(t, conn, "PING", nil)
	readUntil(t, conn, "PONG")
}

func TestUnknownTypeReturnsError(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readUntil(t, conn, "WELCOME")

	sendMsg(t, conn, "BOGUS", nil)

	msg := readUntil(t, conn, "ERROR")
	var payload models.ErrorResponse
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "UNKNOWN_TYPE", payload.Code)
}

func TestSessionRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readUntil(t, conn, "WELCOME")

	sendMsg(t, conn, "START_SESSION", nil)
	started := readUntil(t, conn, "SESSION_STARTED")
	var startPayload models.SessionStartedPayload
	require.NoError(t, json.Unmarshal(started.Payload, &startPayload))
	require.NotEmpty(t, startPayload.SessionID)

	// First frame registers the candidate.
	frame := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	sendMsg(t, conn, "FRAME", models.FramePayload{SessionID: startPayload.SessionID, Frame: frame})

	reg := readUntil(t, conn, "REGISTRATION_RESULT")
	var regPayload models.RegistrationResultPayload
	require.NoError(t, json.Unmarshal(reg.Payload, &regPayload))
	assert.Equal(t, "AUTHORIZED", regPayload.Status)

	update := readUntil(t, conn, "FOCUS_UPDATE")
	var focusPayload models.FocusUpdatePayload
	require.NoError(t, json.Unmarshal(update.Payload, &focusPayload))
	assert.Equal(t, 100.0, focusPayload.Score)

	sendMsg(t, conn, "END_SESSION", models.EndSessionPayload{SessionID: startPayload.SessionID})
	terminated := readUntil(t, conn, "SESSION_TERMINATED")
	var termPayload models.SessionTerminatedPayload
	require.NoError(t, json.Unmarshal(terminated.Payload, &termPayload))
	assert.Equal(t, startPayload.SessionID, termPayload.SessionID)
	assert.Equal(t, "USER_ENDED", termPayload.Reason)
}

func TestInvalidBase64FrameIsDropped(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readUntil(t, conn, "WELCOME")

	sendMsg(t, conn, "START_SESSION", nil)
	started := readUntil(t, conn, "SESSION_STARTED")
	var startPayload models.SessionStartedPayload
	require.NoError(t, json.Unmarshal(started.Payload, &startPayload))

	sendMsg(t, conn, "FRAME", models.FramePayload{SessionID: startPayload.SessionID, Frame: "!!! not base64 !!!"})

	msg := readUntil(t, conn, "ERROR")
	var payload models.ErrorResponse
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "INVALID_FRAME", payload.Code)
}

func TestFrameForUnknownSessionRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readUntil(t, conn, "WELCOME")

	frame := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	sendMsg(t, conn, "FRAME", models.FramePayload{SessionID: "no-such-session", Frame: frame})

	msg := readUntil(t, conn, "ERROR")
	var payload models.ErrorResponse
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "SESSION_NOT_FOUND", payload.Code)
}

func TestEndUnknownSessionRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readUntil(t, conn, "WELCOME")

	sendMsg(t, conn, "END_SESSION", models.EndSessionPayload{SessionID: "no-such-session"})

	msg := readUntil(t, conn, "ERROR")
	var payload models.ErrorResponse
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "SESSION_NOT_FOUND", payload.Code)
}
