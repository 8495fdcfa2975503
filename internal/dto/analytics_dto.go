// FILE: internal/dto/analytics_dto.go
package dto

import "time"

// ChatTurnMessage is the in-process pub/sub payload emitted after every chat
// turn and consumed by the analytics aggregator.
type ChatTurnMessage struct {
	ClientId   string    `json:"client_id"`
	InstanceId string    `json:"instance_id"`
	Stage      string    `json:"stage"`
	Category   string    `json:"category"`
	Tier       string    `json:"tier,omitempty"`
	Failed     bool      `json:"failed"`
	At         time.Time `json:"at"`
}
