package transcript

import (
	"sort"
	"strings"

	"github.com/alexanderramin/eventflow/internal/llm"
)

// Role identifies the speaker of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript is an ordered conversation history, oldest turn first.
// Invariant: no turn has empty or all-whitespace text.
type Transcript []Turn

// FromKeyed normalizes a keyed history into a Transcript. Keys are sorted
// lexicographically, so conversational order is only preserved when the
// caller zero-pads them ("01_user", "02_ai", ...); unpadded numeric keys
// ("1", "2", ..., "10") sort out of order. That is a caller contract, not
// something this function corrects. A key containing "ai" (any case) maps
// to the assistant role; every other key maps to the user role.
func FromKeyed(history map[string]string) Transcript {
	keys := make([]string, 0, len(history))
	for k := range history {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := make(Transcript, 0, len(keys))
	for _, key := range keys {
		text := history[key]
		if strings.TrimSpace(text) == "" {
			continue
		}
		role := RoleUser
		if strings.Contains(strings.ToLower(key), "ai") {
			role = RoleAssistant
		}
		t = append(t, Turn{Role: role, Text: text})
	}
	return t
}

// FromTurns normalizes an already-ordered turn list into a Transcript,
// preserving the given order and roles and dropping blank turns.
func FromTurns(turns []Turn) Transcript {
	t := make(Transcript, 0, len(turns))
	for _, turn := range turns {
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		t = append(t, turn)
	}
	return t
}

// Messages converts the transcript to provider messages. The assistant
// role maps to the provider's "model" role.
func (t Transcript) Messages() []llm.Message {
	msgs := make([]llm.Message, 0, len(t))
	for _, turn := range t {
		role := "user"
		if turn.Role == RoleAssistant {
			role = "model"
		}
		msgs = append(msgs, llm.Message{Role: role, Text: turn.Text})
	}
	return msgs
}

// Joined concatenates all turn texts, lowercased, separated by single
// spaces. Used by the sufficiency heuristic's keyword scan.
func (t Transcript) Joined() string {
	parts := make([]string, 0, len(t))
	for _, turn := range t {
		parts = append(parts, turn.Text)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
