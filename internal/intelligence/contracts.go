package intelligence

// Category names one kind of planning information the assistant gathers.
// The set is closed; the sufficiency heuristic checks exactly these five.
type Category string

const (
	CategoryEventType  Category = "event type"
	CategoryDate       Category = "date/time"
	CategoryGuestCount Category = "guest count"
	CategoryBudget     Category = "budget"
	CategoryVenue      Category = "venue"
)

// AllCategories lists every category in reporting order.
var AllCategories = []Category{
	CategoryEventType,
	CategoryDate,
	CategoryGuestCount,
	CategoryBudget,
	CategoryVenue,
}

// SufficiencyVerdict is the heuristic's judgment of whether the
// conversation holds enough information to generate a plan.
type SufficiencyVerdict struct {
	Ready   bool
	Missing []Category
}

// PlanStep is one step of a generated event plan.
type PlanStep struct {
	Step      int    `json:"step"`
	Task      string `json:"task"`
	Details   string `json:"details"`
	Reasoning string `json:"reasoning"`
}

// PlanDocument is the structured event plan produced by the model. The
// service treats it as opaque beyond being parseable JSON; this type
// documents the expected shape and serves the prompt contract.
type PlanDocument struct {
	EventPlan       []PlanStep `json:"event_plan"`
	RequiredVendors []string   `json:"required_vendors"`
	Suggestions     string     `json:"suggestions"`
}

// PlanReply is the outcome of a plan generation request. Exactly one of
// UpdatedPlanJSON and ErrorMessage is non-empty.
type PlanReply struct {
	UpdatedPlanJSON string
	ErrorMessage    string
}

const (
	// fallbackChatReply substitutes for a model response missing reply_text.
	fallbackChatReply = "Tell me more."

	// fallbackRepeatReply substitutes for an unparseable conversational response.
	fallbackRepeatReply = "Could you please repeat that?"

	// fallbackPlanError is the terminal fallback when the plan response
	// carries neither an error nor a plan.
	fallbackPlanError = "Unable to generate plan. Please provide more details."
)
