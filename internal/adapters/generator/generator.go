// Package generator implements artifact generation through an OpenAI-compatible chat completions API.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Generator = (*Client)(nil)

const (
	temperature = 0.7
	maxTokens   = 4000

	// maxResponseBytes bounds how much of a completion response is read.
	maxResponseBytes = 8 << 20
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	// Some gateways answer with a bare content field instead of choices.
	Content string `json:"content"`
}

// Client implements ports.Generator.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	entryFile  string
	now        func() time.Time
}

// NewClient creates a generator from its settings.
func NewClient(s domain.GeneratorSettings) *Client {
	return newClientWithHTTP(s, &http.Client{Timeout: s.Timeout})
}

func newClientWithHTTP(s domain.GeneratorSettings, client *http.Client) *Client {
	entry := s.EntryFile
	if entry == "" {
		entry = domain.EntryFileName
	}
	return &Client{
		httpClient: client,
		endpoint:   strings.TrimRight(strings.TrimSpace(s.BaseURL), "/") + "/chat/completions",
		model:      s.Model,
		apiKey:     s.APIKey,
		entryFile:  entry,
		now:        time.Now,
	}
}

// Generate asks the model for the artifact files and completes them with a README and LICENSE.
func (c *Client) Generate(
	ctx context.Context, brief string, checks []string, attachments []domain.Attachment,
) (domain.Files, error) {
	content, err := c.chat(ctx, []message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(brief, checks, attachments, c.entryFile)},
	})
	if err != nil {
		return nil, domain.WrapCause(domain.ErrGenerationFailed, err)
	}

	files, err := parseFiles(content, c.entryFile)
	if err != nil {
		return nil, domain.WrapCause(domain.ErrGenerationFailed, err)
	}

	if _, ok := files["README.md"]; !ok {
		files["README.md"] = defaultReadme
	}
	files["LICENSE"] = mitLicense(c.now().Year())

	return files, nil
}

func (c *Client) chat(ctx context.Context, messages []message) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", zerr.Wrap(err, "failed to create chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", zerr.Wrap(err, "chat request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", zerr.With(zerr.New("chat request rejected"), "status", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return "", zerr.Wrap(err, "failed to decode chat response")
	}

	content := decoded.Content
	if len(decoded.Choices) > 0 {
		content = decoded.Choices[0].Message.Content
	}
	if strings.TrimSpace(content) == "" {
		return "", zerr.New("chat response is empty")
	}
	return content, nil
}
