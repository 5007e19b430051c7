package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AI_PROCTOR/go-backend/internal/config"
	"AI_PROCTOR/go-backend/internal/database"
	"AI_PROCTOR/go-backend/internal/gateway"
	"AI_PROCTOR/go-backend/internal/handlers"
	"AI_PROCTOR/go-backend/internal/services"
	"AI_PROCTOR/go-backend/internal/session"
	"AI_PROCTOR/go-backend/internal/vision"
)

var httpServer *http.Server

func main() {
	httpPort := flag.String("http-port", "", "HTTP port")
	visionURL := flag.String("vision-url", "", "Vision service URL")
	flag.Parse()

	cfg := config.LoadConfig()
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *visionURL != "" {
		cfg.VisionServiceURL = *visionURL
	}

	startedAt := time.Now()

	log.Println("Starting...")
	log.Printf("HTTP port: %s", cfg.HTTPPort)
	log.Printf("Vision service: %s", cfg.VisionServiceURL)
	log.Printf("Environment: %s", cfg.Environment)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	visionClient, err := services.NewVisionClient(cfg.VisionServiceURL)
	if err != nil {
		log.Printf("Vision service unavailable: %v", err)
		log.Println("Continuing without vision service (for testing)")
	}
	if visionClient != nil {
		defer visionClient.Close()
	}

	var faceDetector vision.FaceDetector
	var objectDetector vision.ObjectDetector
	if visionClient != nil {
		faceDetector = visionClient
		objectDetector = visionClient
	}

	metrics := services.GetMetrics()

	var store session.Store
	if err := database.InitDB(cfg.DSN()); err != nil {
		log.Printf("Database unavailable (%s): %v", cfg.DSNForLog(), err)
		log.Println("Continuing without persistence")
	} else {
		defer database.CloseDB()
		store = database.NewSessionStore()
	}

	gw := gateway.New(metrics)
	manager := session.NewManager(cfg, faceDetector, objectDetector, gw, store, metrics)
	gw.BindManager(manager)

	log.Println("Starting HTTP server...")
	go startHTTPServer(cfg, gw, manager, visionClient, metrics, store != nil, startedAt)

	<-done
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if httpServer != nil {
		log.Println("Stopping HTTP server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		} else {
			log.Println("HTTP server gracefully stopped")
		}
	}

	log.Println("Terminating active sessions...")
	manager.Shutdown()

	log.Println("Closing WebSocket connections...")
	gw.CloseAll()
	log.Println("All WebSocket connections closed...")

	log.Println("Goodbye!")
}

func startHTTPServer(cfg *config.Config, gw *gateway.Gateway, manager *session.Manager, visionClient *services.VisionClient, metrics *services.Metrics, withDB bool, startedAt time.Time) {
	port := cfg.HTTPPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", gw.HandleWebSocket)

	mux.HandleFunc("/api/health", handleHealth(gw, manager, visionClient, startedAt))
	mux.HandleFunc("/api/metrics", handleMetrics(gw, manager, metrics))

	if withDB {
		mux.HandleFunc("/api/auth/register", handlers.Register)
		mux.HandleFunc("/api/auth/login", handlers.Login)
		mux.HandleFunc("/api/auth/logout", handlers.Logout)
		mux.HandleFunc("/api/auth/me", handlers.GetCurrentUser)
		mux.HandleFunc("/api/sessions", handlers.GetSessions)
		mux.HandleFunc("/api/alerts", handlers.GetAlerts)
	} else {
		log.Println("Persistence disabled, review API not registered")
	}

	httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("HTTP server listening on port %s", port)
	log.Printf("WebSocket:  ws://localhost:%s/ws", port)
	log.Printf("REST API:   http://localhost:%s/api/*", port)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}

func handleHealth(gw *gateway.Gateway, manager *session.Manager, visionClient *services.VisionClient, startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": "Method not allowed",
			})
			return
		}

		visionHealthy := false
		if visionClient != nil {
			visionHealthy = visionClient.HealthCheck()
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":            "healthy",
			"vision_service":    visionHealthy,
			"active_clients":    gw.ActiveClients(),
			"active_sessions":   manager.ActiveSessions(),
			"system_uptime_sec": int(time.Since(startedAt).Seconds()),
			"timestamp":         time.Now().Format(time.RFC3339),
		})
	}
}

func handleMetrics(gw *gateway.Gateway, manager *session.Manager, metrics *services.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": "Method not allowed",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total_frames":        metrics.GetTotalFrames(),
			"total_errors":        metrics.GetTotalErrors(),
			"total_alerts":        metrics.GetTotalAlerts(),
			"sessions_started":    metrics.GetSessionsStarted(),
			"sessions_terminated": metrics.GetSessionsTerminated(),
			"active_sessions":     manager.ActiveSessions(),
			"active_clients":      gw.ActiveClients(),
			"avg_latency_ms":      metrics.GetAvgLatency(),
			"websocket":           metrics.GetWebSocketMetrics(),
			"timestamp":           time.Now().Format(time.RFC3339),
		})
	}
}
