package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

type message struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func send(conn *websocket.Conn, msgType string, payload interface{}) error {
	return conn.WriteJSON(message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	})
}

func main() {
	serverURL := flag.String("url", "ws://localhost:8080/ws", "WebSocket URL of the proctor backend")
	framePath := flag.String("frame", "", "Path to a JPEG frame to stream")
	frames := flag.Int("n", 10, "Number of frames to send")
	flag.Parse()

	fmt.Println("AI PROCTOR - WebSocket Testing Client")
	fmt.Println("[INFO] Connecting to", *serverURL)

	conn, _, err := websocket.DefaultDialer.Dial(*serverURL, nil)
	if err != nil {
		log.Fatalf("❌ Connection failed: %v", err)
	}
	defer conn.Close()

	var frameData []byte
	if *framePath != "" {
		frameData, err = os.ReadFile(*framePath)
		if err != nil {
			log.Fatalf("❌ Failed to read frame: %v", err)
		}
	} else {
		frameData = []byte("not a real jpeg")
		fmt.Println("[INFO] No -frame given, sending placeholder bytes")
	}
	frameB64 := base64.StdEncoding.EncodeToString(frameData)

	// Reader goroutine: print everything the server pushes.
	sessionCh := make(chan string, 1)
	go func() {
		for {
			var raw map[string]json.RawMessage
			if err := conn.ReadJSON(&raw); err != nil {
				log.Printf("Read error: %v", err)
				os.Exit(1)
			}
			var msgType string
			json.Unmarshal(raw["type"], &msgType)
			fmt.Printf("<- %s %s\n", msgType, string(raw["payload"]))

			if msgType == "SESSION_STARTED" {
				var payload struct {
					SessionID string `json:"session_id"`
				}
				json.Unmarshal(raw["payload"], &payload)
				sessionCh <- payload.SessionID
			}
			if msgType == "SESSION_TERMINATED" {
				fmt.Println("✅ Session terminated, done")
				os.Exit(0)
			}
		}
	}()

	if err := send(conn, "PING", nil); err != nil {
		log.Fatalf("❌ Ping failed: %v", err)
	}

	if err := send(conn, "START_SESSION", nil); err != nil {
		log.Fatalf("❌ Start session failed: %v", err)
	}

	var sessionID string
	select {
	case sessionID = <-sessionCh:
		fmt.Printf("✓ Session started: %s\n", sessionID)
	case <-time.After(5 * time.Second):
		log.Fatal("❌ No SESSION_STARTED received")
	}

	for i := 0; i < *frames; i++ {
		err := send(conn, "FRAME", map[string]string{
			"session_id": sessionID,
			"frame":      frameB64,
		})
		if err != nil {
			log.Fatalf("❌ Frame send failed: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println("[INFO] Ending session...")
	if err := send(conn, "END_SESSION", map[string]string{"session_id": sessionID}); err != nil {
		log.Fatalf("❌ End session failed: %v", err)
	}

	time.Sleep(3 * time.Second)
	fmt.Println("✅ Done")
}
