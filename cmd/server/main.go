package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/stationhq/station/backend-go/internal/asset"
	"github.com/stationhq/station/backend-go/internal/auth"
	"github.com/stationhq/station/backend-go/internal/config"
	mw "github.com/stationhq/station/backend-go/internal/middleware"
	"github.com/stationhq/station/backend-go/internal/session"
	"github.com/stationhq/station/backend-go/internal/store"
	"github.com/stationhq/station/backend-go/internal/template"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("open database", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	authService := auth.NewService(st, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	templateService := template.NewService(st)
	templateHandler := template.NewHandler(templateService)

	hub := session.NewHub()
	go hub.Run()

	sessionService := session.NewService(st, hub)
	sessionHandler := session.NewHandler(sessionService, templateService)

	assetHandler := asset.NewHandler(cfg.AssetDir)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Asset endpoints
	r.HandleFunc("/assets/upload", assetHandler.Upload).Methods("POST", "OPTIONS")
	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/presets", sessionHandler.Presets).Methods("GET")

	api.HandleFunc("/sessions", sessionHandler.List).Methods("GET")
	api.HandleFunc("/sessions", sessionHandler.Create).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}", sessionHandler.Delete).Methods("DELETE")
	api.HandleFunc("/sessions/{sessionId}/ops", sessionHandler.ApplyOp).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/render", sessionHandler.Render).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}/summary", sessionHandler.Summary).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}/template", sessionHandler.SaveTemplate).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/apply-template", sessionHandler.ApplyTemplate).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/images", sessionHandler.InsertImage).Methods("POST")

	api.HandleFunc("/templates", templateHandler.List).Methods("GET")
	api.HandleFunc("/templates/{templateId}", templateHandler.Get).Methods("GET")
	api.HandleFunc("/templates/{templateId}", templateHandler.Delete).Methods("DELETE")

	// WebSocket endpoint: read-only state watchers. Auth via query param
	// since browsers cannot set headers on the handshake.
	r.HandleFunc("/ws/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, sessionService, authService)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *session.Hub, sessions *session.Service, authSvc *auth.Service) {
	sessionID := mux.Vars(r)["sessionId"]

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	if _, err := authSvc.ValidateToken(token); err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	sess, err := sessions.Get(sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:1420", "localhost:5173"},
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	watcher := session.NewWatcher(hub, conn, sess, clientID)

	hub.Register(watcher)

	ctx := r.Context()
	go watcher.WritePump(ctx)
	watcher.ReadPump(ctx)
}
