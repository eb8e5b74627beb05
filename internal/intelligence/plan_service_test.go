package intelligence

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/eventflow/internal/llm"
)

func readyHistory() []string {
	return []string{
		"I'm planning a wedding",
		"June 2025, about 50 guests",
		"$5000 budget, garden venue",
	}
}

func TestPlanServiceGenerate_ShortCircuitsWithoutProviderCall(t *testing.T) {
	client := &mockClient{response: `unused`}
	svc := NewPlanService(client)

	reply, err := svc.Generate(context.Background(), userTurns("hello there"))

	require.NoError(t, err)
	assert.Zero(t, client.calls, "insufficient transcripts must not reach the provider")
	assert.Empty(t, reply.UpdatedPlanJSON)
	assert.Contains(t, reply.ErrorMessage, "I still need a bit more info")
	assert.Contains(t, reply.ErrorMessage, string(CategoryEventType))
}

func TestPlanServiceGenerate_ReturnsSerializedPlan(t *testing.T) {
	client := &mockClient{response: `{
		"reply_text": "Here is your plan",
		"updated_plan_json": {
			"event_plan": [
				{"step": 1, "task": "Set the vision", "details": "Agree on style", "reasoning": "Everything follows from it"}
			],
			"required_vendors": ["Caterer", "Florist"],
			"suggestions": "Book the garden early."
		}
	}`}
	svc := NewPlanService(client)

	reply, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Empty(t, reply.ErrorMessage)

	var doc PlanDocument
	require.NoError(t, json.Unmarshal([]byte(reply.UpdatedPlanJSON), &doc))
	require.Len(t, doc.EventPlan, 1)
	assert.Equal(t, "Set the vision", doc.EventPlan[0].Task)
	assert.Equal(t, []string{"Caterer", "Florist"}, doc.RequiredVendors)

	// The instruction turn is appended after the history.
	last := client.lastReq.Messages[len(client.lastReq.Messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Text, "Information sufficiency: SUFFICIENT")
	assert.Equal(t, llm.TaskPlan, client.lastReq.Task)
}

func TestPlanServiceGenerate_ReadyWithMissingAsksForDefaults(t *testing.T) {
	client := &mockClient{response: `{"error":"x"}`}
	svc := NewPlanService(client)

	_, err := svc.Generate(context.Background(), userTurns("a corporate event"))

	require.NoError(t, err)
	last := client.lastReq.Messages[len(client.lastReq.Messages)-1]
	assert.Contains(t, last.Text, "suggest reasonable defaults")
	assert.Contains(t, last.Text, string(CategoryBudget))
}

func TestPlanServiceGenerate_ModelErrorBranch(t *testing.T) {
	client := &mockClient{response: `{"reply_text":"Sorry","error":"Missing critical information."}`}
	svc := NewPlanService(client)

	reply, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	require.NoError(t, err)
	assert.Equal(t, "Missing critical information.", reply.ErrorMessage)
	assert.Empty(t, reply.UpdatedPlanJSON)
}

func TestPlanServiceGenerate_EmptyObjectHitsTerminalFallback(t *testing.T) {
	client := &mockClient{response: `{}`}
	svc := NewPlanService(client)

	reply, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	require.NoError(t, err)
	assert.Equal(t, "Unable to generate plan. Please provide more details.", reply.ErrorMessage)
	assert.Empty(t, reply.UpdatedPlanJSON)
}

func TestPlanServiceGenerate_NullPlanHitsTerminalFallback(t *testing.T) {
	client := &mockClient{response: `{"updated_plan_json": null}`}
	svc := NewPlanService(client)

	reply, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	require.NoError(t, err)
	assert.Equal(t, "Unable to generate plan. Please provide more details.", reply.ErrorMessage)
}

func TestPlanServiceGenerate_UnparseableOutputFails(t *testing.T) {
	client := &mockClient{response: "not json"}
	svc := NewPlanService(client)

	_, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	require.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestPlanServiceGenerate_TransportErrorPropagates(t *testing.T) {
	client := &mockClient{err: &llm.UpstreamError{Status: 500, Body: "boom"}}
	svc := NewPlanService(client)

	_, err := svc.Generate(context.Background(), userTurns(readyHistory()...))

	var upstream *llm.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

// A plan document survives the serialize/parse round trip unchanged.
func TestPlanDocument_RoundTrip(t *testing.T) {
	doc := PlanDocument{
		EventPlan: []PlanStep{
			{Step: 1, Task: "Vision", Details: "Pick a theme", Reasoning: "Anchors all decisions"},
			{Step: 2, Task: "Budget", Details: "Split by category", Reasoning: "Prevents overspend"},
		},
		RequiredVendors: []string{"Caterer"},
		Suggestions:     "Keep a 10% buffer.",
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var got PlanDocument
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}
