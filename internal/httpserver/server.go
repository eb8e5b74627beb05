// Package httpserver exposes the EventFlow assistant over HTTP.
package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/eventflow/internal/intelligence"
)

// Server is the HTTP transport adapter for the assistant services.
type Server struct {
	chat intelligence.ChatService
	plan intelligence.PlanService
	log  *slog.Logger
}

// NewServer creates a Server. A nil logger discards request logs.
func NewServer(chat intelligence.ChatService, plan intelligence.PlanService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{chat: chat, plan: plan, log: log}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Post("/chat", s.handleChat)
	r.Post("/generate-flowchart", s.handleFlowchart)
	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the EventFlow API",
		"endpoints": map[string]string{
			"/chat":               "POST - Conversational endpoint to gather event details",
			"/generate-flowchart": "POST - Generate a detailed event plan",
			"/health":             "GET - Liveness check",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
