// FILE: internal/dto/chat_dto.go
package dto

// Chat API DTOs

type SendChatRequest struct {
	Message    string `json:"message" validate:"required,min=1"`
	InstanceId string `json:"instance_id,omitempty"`
	NewChat    bool   `json:"new_chat,omitempty"`
}

type SendChatResponse struct {
	Reply      string         `json:"reply"`
	IsHtml     bool           `json:"isHtml"`
	InstanceId string         `json:"instance_id"`
	Stage      string         `json:"stage"`
	Comparison *ComparisonDTO `json:"comparison,omitempty"`
}

// ComparisonDTO mirrors the structured comparison payload so clients can
// render the table natively instead of parsing the HTML fragment.
type ComparisonDTO struct {
	Products []string            `json:"products"`
	Features map[string][]string `json:"features"`
}

type ResetSessionRequest struct {
	InstanceId string `json:"instance_id" validate:"required"`
}

type ResetSessionResponse struct {
	InstanceId string `json:"instance_id"`
	Reset      bool   `json:"reset"`
}

// ChatStatsResponse carries the analytics counters aggregated from chat-turn
// events.
type ChatStatsResponse struct {
	TotalTurns      int64            `json:"total_turns"`
	FailedTurns     int64            `json:"failed_turns"`
	TurnsByStage    map[string]int64 `json:"turns_by_stage"`
	TurnsByCategory map[string]int64 `json:"turns_by_category"`
	TurnsByTier     map[string]int64 `json:"turns_by_tier"`
}
