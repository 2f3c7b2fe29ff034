// Package chatbackend implements the ChatBackend collaborator the chat
// built-in consumes: a single-shot chat-completion POST, configured via
// LLM_API_URL / LLM_API_KEY / LLM_MODEL_NAME, with retry and best-effort
// clipboard copy of the response.
package chatbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/atotto/clipboard"
	"github.com/palmshell/psh/internal/config"
)

// Backend implements commands.ChatBackend over a configured HTTP endpoint:
// a single-message chat-completion request
// ({"model", "messages": [{"role": "user", "content": prompt}]}), reading
// the reply back out of "choices[0].message.content".
type Backend struct {
	Client     *http.Client
	APIURL     string
	APIKey     string
	ModelName  string
	MaxRetries int
	BaseDelay  time.Duration
}

// New builds a Backend from resolved configuration.
func New(cfg *config.Config) *Backend {
	return &Backend{
		Client:     &http.Client{Timeout: 40 * time.Second},
		APIURL:     cfg.LLMAPIURL,
		APIKey:     cfg.LLMAPIKey,
		ModelName:  cfg.LLMModelName,
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Submit sends prompt as a single user message and returns the model's
// response content. A successful response is copied to the clipboard on a
// best-effort basis; clipboard failures are swallowed and never affect the
// returned value.
func (b *Backend) Submit(ctx context.Context, prompt string) (string, error) {
	if b.APIURL == "" || b.APIKey == "" {
		return "", fmt.Errorf("LLM backend is not configured (set LLM_API_URL and LLM_API_KEY)")
	}

	payload, err := json.Marshal(chatRequest{
		Model: b.ModelName,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	body, err := b.doWithRetry(ctx, payload)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat backend returned no choices")
	}

	content := parsed.Choices[0].Message.Content
	_ = clipboard.WriteAll(content)
	return content, nil
}

// doWithRetry POSTs payload with exponential backoff and jitter. 4xx
// responses fail immediately; 5xx responses and transport errors retry.
func (b *Backend) doWithRetry(ctx context.Context, payload []byte) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= b.MaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.APIURL, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("building chat request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+b.APIKey)

		resp, err := b.Client.Do(req)
		if err == nil {
			respBody, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				lastErr = readErr
			} else if resp.StatusCode < 500 {
				if resp.StatusCode >= 400 {
					return nil, fmt.Errorf("chat backend returned %d: %s", resp.StatusCode, respBody)
				}
				return respBody, nil
			} else {
				lastErr = fmt.Errorf("chat backend returned %d", resp.StatusCode)
			}
		} else {
			lastErr = err
		}

		if attempt == b.MaxRetries {
			break
		}

		backoff := float64(b.BaseDelay) * math.Pow(2, float64(attempt))
		jitter := rand.Float64() * 0.25 * backoff
		sleep := time.Duration(backoff + jitter)
		if sleep > 10*time.Second {
			sleep = 10 * time.Second
		}

		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("chat request failed after %d retries: %w", b.MaxRetries, lastErr)
}
