// Package ask turns a natural-language arithmetic question into an expression the
// church compiler understands, using an OpenAI-compatible chat completion endpoint.
package ask

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vic/lambdaviz/pkg/church"
)

// SystemPrompt asks the model for a bare expression.
const SystemPrompt = `You are an accurate AI model tasked with translating a user's query into a mathematical expression. You will ONLY output the expression, with NO parenthesis. The expression MUST represent the question asked by the user. DO NOT simplify OR evaluate it. Use + to represent addition, - for subtraction, * for multiplication, / for division, and ! for factorial.
EXAMPLE
USER: What is three plus seven divided by twelve?
YOU: 3 + 7 / 12
`

var ErrNoChoices = errors.New("model returned no choices")

// APIError is returned for any non-200 response.
type APIError struct {
	StatusCode int
	Body       string
}

var _ error = new(APIError)

func (e *APIError) Error() string {
	return fmt.Sprintf("bad status: %d, body: %s", e.StatusCode, e.Body)
}

type Client struct {
	BaseURL string // e.g. http://localhost:11434/v1
	Model   string
	APIKey  string
	HTTP    *http.Client
	Logger  *slog.Logger
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Stream      bool      `json:"stream"`
	Temperature float32   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Translate sends question to the model and returns its answer with every `!` split
// into its own token.
func (c *Client) Translate(ctx context.Context, question string) (string, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	body, err := json.Marshal(completionRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: question},
		},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(c.BaseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	logger.InfoContext(ctx, "translating", "model", c.Model, "endpoint", c.BaseURL)
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		content, _ := io.ReadAll(resp.Body)
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(content),
		}
	}

	var res completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", ErrNoChoices
	}
	answer := church.Normalize(res.Choices[0].Message.Content)
	logger.DebugContext(ctx, "translated", "question", question, "expression", answer)
	return answer, nil
}
