package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/eventflow/internal/llm"
	"github.com/alexanderramin/eventflow/internal/transcript"
)

// PlanService generates a full event plan from the conversation so far.
type PlanService interface {
	// Generate assesses the transcript and either short-circuits with a
	// missing-information reply or asks the model for a plan document.
	Generate(ctx context.Context, history transcript.Transcript) (*PlanReply, error)
}

type planService struct {
	client llm.Client
}

// NewPlanService creates a PlanService backed by a provider client.
func NewPlanService(client llm.Client) PlanService {
	return &planService{client: client}
}

// planTurnResponse is the JSON structure the model outputs in plan mode.
// UpdatedPlan stays raw: the plan document is opaque to this service and
// must survive re-serialization byte-for-field intact.
type planTurnResponse struct {
	ReplyText   string          `json:"reply_text"`
	UpdatedPlan json.RawMessage `json:"updated_plan_json"`
	Error       string          `json:"error"`
}

func (s *planService) Generate(ctx context.Context, history transcript.Transcript) (*PlanReply, error) {
	verdict := Assess(history)
	if !verdict.Ready {
		// Not worth a provider call; tell the caller what is still needed.
		return &PlanReply{
			ErrorMessage: fmt.Sprintf("I still need a bit more info: %s", joinCategories(verdict.Missing)),
		}, nil
	}

	msgs := append(history.Messages(), llm.Message{Role: "user", Text: buildPlanInstruction(verdict)})

	resp, err := s.client.GenerateContent(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		Messages:     msgs,
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON[planTurnResponse](resp.Text, nil)
	if err != nil {
		// Unlike chat, a malformed plan response fails the request.
		return nil, err
	}

	return shapePlanReply(parsed), nil
}

// shapePlanReply maps the parsed model output onto the caller-facing
// reply. The three branches are exhaustive: a model-reported error, a
// serialized plan, or the terminal fallback.
func shapePlanReply(parsed planTurnResponse) *PlanReply {
	if strings.TrimSpace(parsed.Error) != "" {
		return &PlanReply{ErrorMessage: parsed.Error}
	}
	if planPresent(parsed.UpdatedPlan) {
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, parsed.UpdatedPlan); err != nil {
			return &PlanReply{ErrorMessage: fallbackPlanError}
		}
		return &PlanReply{UpdatedPlanJSON: compacted.String()}
	}
	return &PlanReply{ErrorMessage: fallbackPlanError}
}

func planPresent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}
