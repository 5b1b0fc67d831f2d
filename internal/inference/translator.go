package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// MaxNewTokens caps the length of every generated paraphrase.
const MaxNewTokens = 128

// Parameters are the generation options sent with every request.
type Parameters struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

// Payload is the body of an inference request.
type Payload struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// NewPayload wraps text unchanged. Empty input is passed through.
func NewPayload(text string) Payload {
	return Payload{
		Inputs:     text,
		Parameters: Parameters{MaxNewTokens: MaxNewTokens},
	}
}

// Endpoint returns the model URL requests are posted to.
func (c *HuggingFaceClient) Endpoint() string {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/models/" + c.Model
}

func (c *HuggingFaceClient) newRequest(ctx context.Context, text string) (*http.Request, error) {
	body, err := json.Marshal(NewPayload(text))
	if err != nil {
		return nil, fmt.Errorf("huggingface: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)
	return req, nil
}
