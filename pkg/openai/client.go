package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/pkg/config"
)

// Client talks to the OpenAI-compatible image and chat completion APIs.
// Every call carries an explicit timeout through the request context; a
// hung provider never blocks a handler indefinitely.
type Client struct {
	BaseURL    string
	APIKey     string
	ImageModel string
	ChatModel  string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// imageRequest is the payload for the image generation endpoint
type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality,omitempty"`
	Style   string `json:"style,omitempty"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewClient creates a new provider client from configuration
func NewClient(cfg *config.OpenAIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		ImageModel: cfg.ImageModel,
		ChatModel:  cfg.ChatModel,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// GenerateImage renders one image for the prompt at the given size and
// returns the provider-hosted (time-limited) URL.
func (c *Client) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	reqBody := imageRequest{
		Model:   c.ImageModel,
		Prompt:  prompt,
		N:       1,
		Size:    size,
		Quality: "hd",
		Style:   "vivid",
	}

	c.Logger.Info("Requesting image generation",
		zap.String("model", c.ImageModel),
		zap.String("size", size))

	var resp imageResponse
	if err := c.post(ctx, "/images/generations", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("image response contained no image URL")
	}

	return resp.Data[0].URL, nil
}

// GenerateCompletion sends a system + user prompt pair to the chat
// completion endpoint and returns the raw assistant message.
func (c *Client) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.8,
		MaxTokens:   500,
	}

	c.Logger.Info("Requesting chat completion", zap.String("model", c.ChatModel))

	var resp chatResponse
	if err := c.post(ctx, "/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// post sends a JSON request and decodes the JSON response
func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		c.Logger.Error("Failed to create provider request", zap.Error(err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Provider request failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read provider response", zap.Error(err))
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			c.Logger.Error("Provider returned error",
				zap.Int("status", resp.StatusCode),
				zap.String("type", errResp.Error.Type),
				zap.String("message", errResp.Error.Message))
			return fmt.Errorf("provider error: %s", errResp.Error.Message)
		}
		c.Logger.Error("Provider returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(respBody)))
		return fmt.Errorf("provider error: %d %s", resp.StatusCode, string(respBody))
	}

	return json.Unmarshal(respBody, out)
}
