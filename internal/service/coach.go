package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

// CoachClient talks to the coaching worker service, which fronts the LLM.
// This side only ships context and relays the reply.
type CoachClient struct {
	baseURL string
	http    *http.Client
}

func NewCoachClient() *CoachClient {
	url := os.Getenv("COACH_WORKER_URL")
	if url == "" {
		url = "http://localhost:8000"
	}
	return &CoachClient{
		baseURL: url,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type CoachChatRequest struct {
	Message     string             `json:"message"`
	History     []CoachChatMessage `json:"history,omitempty"`
	Dog         *model.Dog         `json:"dog,omitempty"`
	QuizResults *model.QuizResults `json:"quiz_results,omitempty"`
}

type CoachChatMessage struct {
	Role    string `json:"role"` // user | coach
	Content string `json:"content"`
}

type CoachChatResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (c *CoachClient) Chat(ctx context.Context, req CoachChatRequest) (*CoachChatResponse, error) {
	return post[CoachChatResponse](ctx, c, "/coach/chat", req)
}

func post[T any](ctx context.Context, c *CoachClient, path string, body any) (*T, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("coach worker %s: status %d", path, resp.StatusCode)
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
