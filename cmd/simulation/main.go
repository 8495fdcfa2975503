package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	baseURL  = "http://localhost:3000/api/chat/v1"
	clientID = "simulation-client"
)

// Simplified DTOs for the script
type sendChatRequest struct {
	Message    string `json:"message"`
	InstanceID string `json:"instance_id,omitempty"`
	NewChat    bool   `json:"new_chat,omitempty"`
}

type sendChatResponse struct {
	Data struct {
		Reply      string `json:"reply"`
		IsHTML     bool   `json:"isHtml"`
		InstanceID string `json:"instance_id"`
		Stage      string `json:"stage"`
	} `json:"data"`
}

func main() {
	fmt.Println("=== Shopping Assistant Simulation Client ===")

	// One full funnel: category detection, the interview, a recommendation,
	// then followups against the shown products.
	testCases := []string{
		"I need a laptop",
		"mostly for gaming",
		"somewhere around 1000-1500",
		"compare them for me",
		"these are too expensive, anything cheaper?",
		"thanks, that's all!",
	}

	instanceID := ""
	for i, text := range testCases {
		fmt.Printf("\nUSER: %s\n", text)

		start := time.Now()
		reply, err := sendChat(text, instanceID, i == 0)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		instanceID = reply.Data.InstanceID
		fmt.Printf("AI (%v) [%s]: %s\n", elapsed, reply.Data.Stage, reply.Data.Reply)
	}
}

func sendChat(message, instanceID string, newChat bool) (*sendChatResponse, error) {
	payload, _ := json.Marshal(sendChatRequest{
		Message:    message,
		InstanceID: instanceID,
		NewChat:    newChat,
	})

	req, err := http.NewRequest("POST", baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Id", clientID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("non-200 response (%d): %s", resp.StatusCode, string(body))
	}

	var out sendChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
