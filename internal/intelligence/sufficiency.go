package intelligence

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/alexanderramin/eventflow/internal/transcript"
)

// Keyword lists are approximate and English-specific. They are a cheap
// pre-filter, not a parser; replacing them with a model-based classifier
// only requires swapping Assess.
var (
	eventKeywords = []string{
		"event", "party", "wedding", "birthday", "bash", "ceremony",
		"meeting", "corporate", "get-together", "dinner", "lunch", "anniversary",
	}
	dateKeywords = []string{
		"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct",
		"nov", "dec", "month", "year", "week", "tomorrow", "weekend", "night", "day",
	}
	guestKeywords = []string{
		"guest", "people", "pax", "friends", "family", "crowd", "attendee",
	}
	budgetKeywords = []string{
		"budget", "cost", "price", "dollar", "usd", "rupees", "$",
		"cheap", "expensive", "afford", "spending",
	}
	venueKeywords = []string{
		"venue", "place", "hall", "hotel", "resort", "home", "house", "garden",
		"outdoor", "indoor", "restaurant", "cafe", "beach", "bar",
	}
)

// Assess scans the transcript for the five planning categories and returns
// a sufficiency verdict.
//
// Policy (relaxed): the verdict is ready as soon as the event type is
// known. All other missing categories are reported so the plan prompt can
// ask the model to assume reasonable defaults for them. The alternative
// strict policy ("at most one category missing") is deliberately not
// implemented.
//
// Per-category tests: date accepts any digit as a fallback signal (covers
// "12/05" style answers); guest count requires both a guest word and a
// digit; the rest are plain keyword matches.
func Assess(t transcript.Transcript) SufficiencyVerdict {
	text := t.Joined()
	hasDigit := strings.ContainsFunc(text, unicode.IsDigit)

	present := map[Category]bool{
		CategoryEventType:  containsAny(text, eventKeywords),
		CategoryDate:       containsAny(text, dateKeywords) || hasDigit,
		CategoryGuestCount: containsAny(text, guestKeywords) && hasDigit,
		CategoryBudget:     containsAny(text, budgetKeywords),
		CategoryVenue:      containsAny(text, venueKeywords),
	}

	missing := lo.Filter(AllCategories, func(c Category, _ int) bool {
		return !present[c]
	})

	return SufficiencyVerdict{
		Ready:   present[CategoryEventType],
		Missing: missing,
	}
}

func containsAny(text string, keywords []string) bool {
	return lo.SomeBy(keywords, func(k string) bool {
		return strings.Contains(text, k)
	})
}
