// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"ai-shopassist-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	Stats() dto.ChatStatsResponse
}

// consumerService aggregates chat-turn events into in-memory counters
// served by the stats endpoint. Counters reset on restart; durable
// analytics ride the NATS event stream instead.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string

	mu              sync.RWMutex
	totalTurns      int64
	failedTurns     int64
	turnsByStage    map[string]int64
	turnsByCategory map[string]int64
	turnsByTier     map[string]int64
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		turnsByStage:    make(map[string]int64),
		turnsByCategory: make(map[string]int64),
		turnsByTier:     make(map[string]int64),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ChatTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chat turn message: %v", err)
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	cs.mu.Lock()
	cs.totalTurns++
	if payload.Failed {
		cs.failedTurns++
	}
	if payload.Stage != "" {
		cs.turnsByStage[payload.Stage]++
	}
	if payload.Category != "" {
		cs.turnsByCategory[payload.Category]++
	}
	if payload.Tier != "" {
		cs.turnsByTier[payload.Tier]++
	}
	cs.mu.Unlock()

	msg.Ack()
}

func (cs *consumerService) Stats() dto.ChatStatsResponse {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	byStage := make(map[string]int64, len(cs.turnsByStage))
	for k, v := range cs.turnsByStage {
		byStage[k] = v
	}
	byCategory := make(map[string]int64, len(cs.turnsByCategory))
	for k, v := range cs.turnsByCategory {
		byCategory[k] = v
	}
	byTier := make(map[string]int64, len(cs.turnsByTier))
	for k, v := range cs.turnsByTier {
		byTier[k] = v
	}

	return dto.ChatStatsResponse{
		TotalTurns:      cs.totalTurns,
		FailedTurns:     cs.failedTurns,
		TurnsByStage:    byStage,
		TurnsByCategory: byCategory,
		TurnsByTier:     byTier,
	}
}
