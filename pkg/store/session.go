package store

import "fmt"

// Product is the normalized in-memory shape of a catalog record.
// Name is the primary key when cross-referencing model output against the
// catalog: anything the LLM proposes must match one of these by exact name.
type Product struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Price    string   `json:"price"` // display form, "$1299" or "N/A"
	Features []string `json:"features"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
}

// ChatMessage is one turn of conversation history.
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// SessionKey scopes one logical conversation. The instance id is a
// client-supplied opaque token; the client id separates tenants sharing
// an instance id namespace.
type SessionKey struct {
	ClientID   string `json:"client_id"`
	InstanceID string `json:"instance_id"`
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%s:%s", k.ClientID, k.InstanceID)
}

// Conversation stages.
const (
	StageDetectCategory = "DETECT_CATEGORY"
	StageGathering      = "GATHERING"
	StageRecommending   = "RECOMMENDING"
	StageFollowup       = "FOLLOWUP"
)

// ChatState is the per-conversation mutable record threaded through the
// recommendation pipeline. It is persisted to the session store after every
// successful turn; a missing record is always re-initializable.
type ChatState struct {
	Key   SessionKey `json:"key"`
	Stage string     `json:"stage"`

	SelectedCategory    string    `json:"selected_category"`
	RecommendedProducts []Product `json:"recommended_products"`

	// Names the user explicitly disliked. Excluded from alternatives
	// unless a turn sets include_rejected_products.
	RejectedProducts map[string]bool `json:"rejected_products"`

	History   []ChatMessage `json:"conversation_history"`
	TurnCount int           `json:"turn_count"`

	HasUseCase              bool `json:"has_use_case"`
	HasBudget               bool `json:"has_budget"`
	HasShownInitialProducts bool `json:"has_shown_initial_products"`

	// Facts gathered turn by turn, used when the extraction call fails.
	Purpose   string   `json:"purpose"`
	Features  []string `json:"features"`
	BudgetMin *float64 `json:"budget_min"`
	BudgetMax *float64 `json:"budget_max"`
	Brand     string   `json:"brand"`
}

// NewChatState returns a fresh conversation at the category-detection stage.
func NewChatState(key SessionKey) *ChatState {
	return &ChatState{
		Key:              key,
		Stage:            StageDetectCategory,
		RejectedProducts: make(map[string]bool),
	}
}

// AppendHistory records one turn. History is append-only within a session.
func (s *ChatState) AppendHistory(role, content string) {
	s.History = append(s.History, ChatMessage{Role: role, Content: content})
}

// Reject marks product names as disliked.
func (s *ChatState) Reject(names ...string) {
	if s.RejectedProducts == nil {
		s.RejectedProducts = make(map[string]bool)
	}
	for _, n := range names {
		s.RejectedProducts[n] = true
	}
}

// SwitchCategory resets the conversation for a new category mid-session.
// History is kept on purpose: it gives the model context for the new
// gathering phase.
func (s *ChatState) SwitchCategory(category string) {
	s.SelectedCategory = category
	s.RecommendedProducts = nil
	s.RejectedProducts = make(map[string]bool)
	s.TurnCount = 1
	s.HasUseCase = false
	s.HasBudget = false
	s.HasShownInitialProducts = false
	s.Purpose = ""
	s.Features = nil
	s.BudgetMin = nil
	s.BudgetMax = nil
	s.Brand = ""
	s.Stage = StageGathering
}

// Close resets the conversation after a satisfaction signal. The selected
// category survives so the user can resume where they left off.
func (s *ChatState) Close() {
	category := s.SelectedCategory
	*s = *NewChatState(s.Key)
	s.SelectedCategory = category
}

// Clone deep-copies the state. In-process session stores hand out shared
// pointers, so a turn must work on its own copy to keep the stored record
// untouched until the turn succeeds.
func (s *ChatState) Clone() *ChatState {
	c := *s

	c.RecommendedProducts = append([]Product(nil), s.RecommendedProducts...)
	for i, p := range c.RecommendedProducts {
		c.RecommendedProducts[i].Features = append([]string(nil), p.Features...)
	}

	c.RejectedProducts = make(map[string]bool, len(s.RejectedProducts))
	for name, v := range s.RejectedProducts {
		c.RejectedProducts[name] = v
	}

	c.History = append([]ChatMessage(nil), s.History...)
	c.Features = append([]string(nil), s.Features...)

	if s.BudgetMin != nil {
		v := *s.BudgetMin
		c.BudgetMin = &v
	}
	if s.BudgetMax != nil {
		v := *s.BudgetMax
		c.BudgetMax = &v
	}
	return &c
}
