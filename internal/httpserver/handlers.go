package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexanderramin/eventflow/internal/llm"
	"github.com/alexanderramin/eventflow/internal/transcript"
)

type chatRequest struct {
	ChatHistory transcript.RawHistory `json:"chat_history"`
	CurrentText string                `json:"current_text"`
}

type chatResponse struct {
	ReplyText string `json:"reply_text"`
}

type flowchartRequest struct {
	ChatHistory transcript.RawHistory `json:"chat_history"`
}

// flowchartResponse always carries both fields; exactly one is non-null.
type flowchartResponse struct {
	UpdatedPlanJSON *string `json:"updated_plan_json"`
	Error           *string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := s.chat.Reply(r.Context(), req.ChatHistory.Normalize(), req.CurrentText)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{ReplyText: reply})
}

func (s *Server) handleFlowchart(w http.ResponseWriter, r *http.Request) {
	var req flowchartRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := s.plan.Generate(r.Context(), req.ChatHistory.Normalize())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := flowchartResponse{}
	if reply.ErrorMessage != "" {
		resp.Error = &reply.ErrorMessage
	} else {
		resp.UpdatedPlanJSON = &reply.UpdatedPlanJSON
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeServiceError maps gateway failures onto the caller-facing error
// contract. Everything is a 500 with a detail string; the taxonomy shows
// up in the message, not the status.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *llm.UpstreamError

	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		writeDetail(w, http.StatusInternalServerError, "GEMINI_API_KEY is not configured on the server.")
	case errors.As(err, &upstream):
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Gemini API Error: %s", upstream.Body))
	case errors.Is(err, llm.ErrTimeout):
		writeDetail(w, http.StatusInternalServerError, "The AI provider did not respond in time.")
	case errors.Is(err, llm.ErrInvalidOutput):
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get or parse AI response: %v", err))
	default:
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("An unexpected error occurred: %v", err))
	}

	s.log.Error("request failed",
		"path", r.URL.Path,
		"request_id", requestIDFrom(r.Context()),
		"error", err)
}
