package intelligence

import (
	"strings"

	"github.com/samber/lo"
)

// conversationalSystemPrompt drives the question-gathering mode. The model
// must answer with a single-field JSON object.
const conversationalSystemPrompt = `You are "EventFlow," a concise event planning assistant.

YOUR GOAL:
Gather missing event details one by one.

CRITICAL INSTRUCTION - READ HISTORY FIRST:
Before asking a question, look at the conversation history.
- If the user has ALREADY answered a question (e.g., they already said "Wedding"), DO NOT ask it again.
- Move immediately to the next missing piece of information.

STRICT RULES:
1. Ask ONLY ONE question at a time.
2. Keep response under 50 words.
3. Be casual and direct.

INFORMATION CHECKLIST (In Order):
1. Event Type (Wedding, Corporate, etc.) -> Have this? Ask Date.
2. Date/Timeframe -> Have this? Ask Guests.
3. Guest Count -> Have this? Ask Budget.
4. Budget Range -> Have this? Ask Venue Preference.
5. Venue/Vibe -> Have this? Ask specific Details.

OUTPUT FORMAT:
Return ONLY a JSON object:
{
  "reply_text": "Your short, focused question here."
}`

// planSystemPrompt drives full plan generation.
const planSystemPrompt = `You are "EventFlow," an expert event planning system.
Analyze the conversation and create a JSON event plan.`

// buildPlanInstruction produces the synthesized final user turn for plan
// generation. The verdict is always ready here; insufficient conversations
// short-circuit before any provider call. Missing non-critical categories
// become assume-defaults guidance.
func buildPlanInstruction(verdict SufficiencyVerdict) string {
	var b strings.Builder

	b.WriteString("Create a detailed JSON event plan based on the conversation.\n")
	b.WriteString("Information sufficiency: SUFFICIENT\n")
	if len(verdict.Missing) > 0 {
		b.WriteString("Note: Information about ")
		b.WriteString(joinCategories(verdict.Missing))
		b.WriteString(" is missing. Please suggest reasonable defaults based on the Event Type.\n")
	}

	b.WriteString(`
REQUIRED JSON STRUCTURE:
{
  "reply_text": "Here is your plan...",
  "updated_plan_json": {
    "event_plan": [
      { "step": 1, "task": "...", "details": "...", "reasoning": "..." }
    ],
    "required_vendors": ["..."],
    "suggestions": "..."
  }
}`)

	return b.String()
}

func joinCategories(categories []Category) string {
	return strings.Join(lo.Map(categories, func(c Category, _ int) string {
		return string(c)
	}), ", ")
}
