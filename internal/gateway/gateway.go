package gateway

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"AI_PROCTOR/go-backend/internal/alerting"
	"AI_PROCTOR/go-backend/internal/models"
	"AI_PROCTOR/go-backend/internal/services"
	"AI_PROCTOR/go-backend/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Message is the inbound WebSocket envelope.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

type outMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type Client struct {
	conn     *websocket.Conn
	clientID string
	send     chan outMessage

	mu       sync.Mutex
	sessions map[string]bool
}

// Gateway maps inbound transport messages onto session manager calls
// and the manager's outputs back onto outbound messages. It holds no
// scoring or policy logic.
type Gateway struct {
	metrics *services.Metrics
	manager *session.Manager

	mu        sync.RWMutex
	clients   map[string]*Client
	bySession map[string]*Client
	count     int32
}

func New(metrics *services.Metrics) *Gateway {
	return &Gateway{
		metrics:   metrics,
		clients:   make(map[string]*Client),
		bySession: make(map[string]*Client),
	}
}

// BindManager wires the session manager after construction; the manager
// needs the gateway as its sink, so the two are created in order.
func (g *Gateway) BindManager(m *session.Manager) {
	g.manager = m
}

func (g *Gateway) ActiveClients() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.clients)
}

func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = "client-" + uuid.NewString()
	}

	log.Printf("WebSocket client connected: %s", clientID)

	client := &Client{
		conn:     conn,
		clientID: clientID,
		send:     make(chan outMessage, 256),
		sessions: make(map[string]bool),
	}

	g.mu.Lock()
	g.clients[clientID] = client
	g.mu.Unlock()
	atomic.AddInt32(&g.count, 1)
	g.metrics.IncrementWebSocketConnections()

	go g.readPump(client)
	go g.writePump(client)

	client.send <- outMessage{
		Type:      "WELCOME",
		ClientID:  clientID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"message": "Connected to AI Proctor Server",
			"version": "1.0",
		},
	}
}

func (g *Gateway) readPump(client *Client) {
	defer func() {
		g.disconnect(client)
		client.conn.Close()
		log.Printf("WebSocket client disconnected: %s", client.clientID)
	}()

	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		err := client.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for %s: %v", client.clientID, err)
				g.metrics.IncrementWebSocketErrors()
			}
			break
		}

		g.metrics.IncrementWebSocketMessages()

		switch msg.Type {
		case "PING":
			client.send <- outMessage{
				Type:      "PONG",
				ClientID:  client.clientID,
				Timestamp: time.Now().Unix(),
			}

		case "START_SESSION":
			g.handleStartSession(client)

		case "FRAME":
			g.handleFrame(client, msg.Payload)

		case "END_SESSION":
			g.handleEndSession(client, msg.Payload)

		default:
			log.Printf("Unknown message type from %s: %s", client.clientID, msg.Type)
			g.sendError(client, "UNKNOWN_TYPE", "unknown message type: "+msg.Type)
		}
	}
}

func (g *Gateway) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) handleStartSession(client *Client) {
	sessionID, err := g.manager.StartSession(client.clientID)
	if err != nil {
		g.sendError(client, "START_FAILED", err.Error())
		return
	}

	client.mu.Lock()
	client.sessions[sessionID] = true
	client.mu.Unlock()

	g.mu.Lock()
	g.bySession[sessionID] = client
	g.mu.Unlock()

	client.send <- outMessage{
		Type:      "SESSION_STARTED",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   models.SessionStartedPayload{SessionID: sessionID},
	}
}

func (g *Gateway) handleFrame(client *Client, payload json.RawMessage) {
	var frame models.FramePayload
	if err := json.Unmarshal(payload, &frame); err != nil {
		g.sendError(client, "INVALID_FRAME", "malformed frame payload")
		return
	}

	image, err := base64.StdEncoding.DecodeString(frame.Frame)
	if err != nil || len(image) == 0 {
		// Undecodable frames are dropped without touching the session.
		g.sendError(client, "INVALID_FRAME", "frame is not valid base64 image data")
		return
	}

	if err := g.manager.SubmitFrame(frame.SessionID, image); err != nil {
		g.sendError(client, rejectionCode(err), err.Error())
	}
}

func (g *Gateway) handleEndSession(client *Client, payload json.RawMessage) {
	var req models.EndSessionPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(client, "INVALID_REQUEST", "malformed end_session payload")
		return
	}

	if err := g.manager.EndSession(req.SessionID, session.ReasonUserEnded); err != nil {
		g.sendError(client, rejectionCode(err), err.Error())
	}
}

func rejectionCode(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return "SESSION_NOT_FOUND"
	case errors.Is(err, session.ErrSessionTerminated):
		return "SESSION_TERMINATED"
	case errors.Is(err, session.ErrQueueFull):
		return "QUEUE_FULL"
	default:
		return "INTERNAL"
	}
}

// disconnect terminates every session owned by the connection and
// removes the client.
func (g *Gateway) disconnect(client *Client) {
	client.mu.Lock()
	owned := make([]string, 0, len(client.sessions))
	for id := range client.sessions {
		owned = append(owned, id)
	}
	client.mu.Unlock()

	for _, id := range owned {
		if err := g.manager.EndSession(id, session.ReasonDisconnected); err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) && !errors.Is(err, session.ErrSessionTerminated) {
				log.Printf("Failed to end session %s on disconnect: %v", id, err)
			}
		}
	}

	g.mu.Lock()
	delete(g.clients, client.clientID)
	g.mu.Unlock()
	atomic.AddInt32(&g.count, -1)
	g.metrics.DecrementWebSocketConnections()
}

func (g *Gateway) sendError(client *Client, code, message string) {
	g.deliver(client, outMessage{
		Type:     "ERROR",
		ClientID: client.clientID,
		Payload: models.ErrorResponse{
			Error:     message,
			Code:      code,
			Timestamp: time.Now().Unix(),
		},
		Timestamp: time.Now().Unix(),
	})
}

func (g *Gateway) deliver(client *Client, msg outMessage) {
	select {
	case client.send <- msg:
	default:
		g.metrics.IncrementWebSocketErrors()
		log.Printf("Send buffer full for %s, dropping %s", client.clientID, msg.Type)
	}
}

func (g *Gateway) clientForSession(sessionID string) *Client {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.bySession[sessionID]
}

// RegistrationResult implements session.Sink.
func (g *Gateway) RegistrationResult(sessionID, status string) {
	client := g.clientForSession(sessionID)
	if client == nil {
		return
	}
	g.deliver(client, outMessage{
		Type:      "REGISTRATION_RESULT",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   models.RegistrationResultPayload{SessionID: sessionID, Status: status},
	})
}

// FocusUpdate implements session.Sink.
func (g *Gateway) FocusUpdate(sessionID string, score float64) {
	client := g.clientForSession(sessionID)
	if client == nil {
		return
	}
	g.deliver(client, outMessage{
		Type:      "FOCUS_UPDATE",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   models.FocusUpdatePayload{SessionID: sessionID, Score: score},
	})
}

// Alert implements session.Sink.
func (g *Gateway) Alert(event alerting.AlertEvent) {
	client := g.clientForSession(event.SessionID)
	if client == nil {
		return
	}
	g.deliver(client, outMessage{
		Type:      "ALERT",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload: models.AlertPayload{
			SessionID: event.SessionID,
			AlertType: string(event.Type),
			Severity:  string(event.Severity),
			Timestamp: event.Timestamp.UnixMilli(),
		},
	})
}

// SessionTerminated implements session.Sink.
func (g *Gateway) SessionTerminated(sessionID string, reason session.Reason) {
	client := g.clientForSession(sessionID)

	g.mu.Lock()
	delete(g.bySession, sessionID)
	g.mu.Unlock()

	if client == nil {
		return
	}

	client.mu.Lock()
	delete(client.sessions, sessionID)
	client.mu.Unlock()

	g.deliver(client, outMessage{
		Type:      "SESSION_TERMINATED",
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   models.SessionTerminatedPayload{SessionID: sessionID, Reason: string(reason)},
	})
}

// CloseAll force-closes every WebSocket connection, used on shutdown.
func (g *Gateway) CloseAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for clientID, client := range g.clients {
		close(client.send)
		client.conn.Close()
		log.Printf("Closed connection for client: %s", clientID)
	}
	g.clients = make(map[string]*Client)
	g.bySession = make(map[string]*Client)
}
