package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/eventflow/internal/llm"
	"github.com/alexanderramin/eventflow/internal/transcript"
)

// newGeminiStub builds an httptest server speaking the generateContent
// envelope, returning candidateText as the inner document. These tests
// exercise the full serialization path (service → client → HTTP → double
// decode) to catch mock-drift between the stubbed and real wire formats.
func newGeminiStub(t *testing.T, candidateText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": candidateText}}}},
			},
		})
	}))
}

func stubbedClient(srv *httptest.Server) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	return llm.NewGeminiClient(cfg, llm.NoopObserver{})
}

func TestChatService_WithHTTPTestServer(t *testing.T) {
	srv := newGeminiStub(t, `{"reply_text":"What type of event are you planning?"}`)
	defer srv.Close()

	svc := NewChatService(stubbedClient(srv))
	history := transcript.FromKeyed(map[string]string{"01_user": "Hi"})

	reply, err := svc.Reply(context.Background(), history, "Hi")

	require.NoError(t, err)
	assert.Equal(t, "What type of event are you planning?", reply)
}

func TestChatService_EmptyCandidatesDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := NewChatService(stubbedClient(srv))

	reply, err := svc.Reply(context.Background(), nil, "Hi")

	require.NoError(t, err)
	assert.Equal(t, "Could you please repeat that?", reply)
}

func TestPlanService_WithHTTPTestServer(t *testing.T) {
	srv := newGeminiStub(t, `{
		"reply_text": "Here is your plan",
		"updated_plan_json": {
			"event_plan": [{"step":1,"task":"Venue","details":"Book the garden","reasoning":"Fills up fast"}],
			"required_vendors": ["Caterer"],
			"suggestions": "Start early."
		}
	}`)
	defer srv.Close()

	svc := NewPlanService(stubbedClient(srv))

	reply, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	require.NoError(t, err)
	assert.Empty(t, reply.ErrorMessage)

	var doc PlanDocument
	require.NoError(t, json.Unmarshal([]byte(reply.UpdatedPlanJSON), &doc))
	require.Len(t, doc.EventPlan, 1)
	assert.Equal(t, "Venue", doc.EventPlan[0].Task)
}

func TestPlanService_UpstreamFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	svc := NewPlanService(stubbedClient(srv))

	_, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	var upstream *llm.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
}
