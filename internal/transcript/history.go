package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedHistory indicates the chat_history field was neither a
// string-to-string object nor a list of {role, text} turns.
var ErrMalformedHistory = errors.New("chat_history must be an object of string messages or a list of {role, text} turns")

// RawHistory is the caller-supplied chat history in either of its two wire
// forms: a keyed object whose sortable keys carry the speaker, or an
// ordered list of explicit turns. Exactly one variant is set after a
// successful decode.
type RawHistory struct {
	Keyed map[string]string
	Turns []Turn
}

// UnmarshalJSON decodes either history form. Objects decode into Keyed,
// arrays into Turns; anything else fails with ErrMalformedHistory.
func (h *RawHistory) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	switch trimmed[0] {
	case '{':
		keyed := make(map[string]string)
		if err := json.Unmarshal(data, &keyed); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedHistory, err)
		}
		h.Keyed = keyed
		return nil
	case '[':
		var turns []Turn
		if err := json.Unmarshal(data, &turns); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedHistory, err)
		}
		for i, turn := range turns {
			if turn.Role != RoleUser && turn.Role != RoleAssistant {
				return fmt.Errorf("%w: turn %d has role %q", ErrMalformedHistory, i, turn.Role)
			}
		}
		h.Turns = turns
		return nil
	default:
		return ErrMalformedHistory
	}
}

// Normalize converts the raw history into the canonical Transcript.
func (h RawHistory) Normalize() Transcript {
	if h.Keyed != nil {
		return FromKeyed(h.Keyed)
	}
	return FromTurns(h.Turns)
}
