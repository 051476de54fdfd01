package generator_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/courier/internal/adapters/generator"
	"go.trai.ch/courier/internal/core/domain"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body any) *http.Response {
	data, _ := json.Marshal(body)
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(string(data))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
}

var settings = domain.GeneratorSettings{
	BaseURL:   "https://llm.example/v1/",
	Model:     "gpt-test",
	APIKey:    "sk-test",
	EntryFile: "index.html",
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_Success(t *testing.T) {
	var captured struct {
		url    string
		auth   string
		model  string
		prompt string
	}
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured.url = req.URL.String()
		captured.auth = req.Header.Get("Authorization")

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		captured.model = body.Model
		captured.prompt = body.Messages[1].Content

		content := "```json\n{\"files\": {\"index.html\": \"<!DOCTYPE html><html></html>\"}}\n```"
		return jsonResponse(http.StatusOK, completion(content)), nil
	})}

	gen := generator.NewClientWithHTTP(settings, client, fixedClock)
	files, err := gen.Generate(t.Context(), "Show the sum of sales", []string{"Page has #total"},
		[]domain.Attachment{{Name: "data.csv", URL: "data:text/csv;base64,YQ=="}})
	require.NoError(t, err)

	assert.Equal(t, "https://llm.example/v1/chat/completions", captured.url)
	assert.Equal(t, "Bearer sk-test", captured.auth)
	assert.Equal(t, "gpt-test", captured.model)
	assert.Contains(t, captured.prompt, "Show the sum of sales")
	assert.Contains(t, captured.prompt, "- Page has #total")
	assert.Contains(t, captured.prompt, "- data.csv: data:text/csv;base64,YQ==")

	assert.Equal(t, []string{"LICENSE", "README.md", "index.html"}, files.Names())
	assert.Equal(t, "<!DOCTYPE html><html></html>", files["index.html"])
	assert.Contains(t, files["LICENSE"], "Copyright (c) 2025")
}

func TestGenerate_KeepsModelReadme(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		content := `{"files": {"index.html": "<html></html>", "README.md": "# Mine"}}`
		return jsonResponse(http.StatusOK, completion(content)), nil
	})}

	files, err := generator.NewClientWithHTTP(settings, client, fixedClock).Generate(t.Context(), "b", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "# Mine", files["README.md"])
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name        string
		respond     func() (*http.Response, error)
		errContains string
	}{
		{
			name: "Missing entry file",
			respond: func() (*http.Response, error) {
				return jsonResponse(http.StatusOK, completion(`{"files": {"app.js": "x"}}`)), nil
			},
			errContains: "generated output is missing the entry file",
		},
		{
			name: "Malformed output",
			respond: func() (*http.Response, error) {
				return jsonResponse(http.StatusOK, completion("Sorry, I cannot help with that.")), nil
			},
			errContains: "generated output is malformed",
		},
		{
			name: "Rejected request",
			respond: func() (*http.Response, error) {
				return jsonResponse(http.StatusUnauthorized, map[string]string{"error": "bad key"}), nil
			},
			errContains: "chat request rejected",
		},
		{
			name: "Empty choices",
			respond: func() (*http.Response, error) {
				return jsonResponse(http.StatusOK, map[string]any{"choices": []any{}}), nil
			},
			errContains: "chat response is empty",
		},
		{
			name: "Transport error",
			respond: func() (*http.Response, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			errContains: "chat request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
				return tt.respond()
			})}

			_, err := generator.NewClientWithHTTP(settings, client, fixedClock).Generate(t.Context(), "b", nil, nil)
			require.ErrorIs(t, err, domain.ErrGenerationFailed)
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestParseFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Files
	}{
		{
			name:    "Wrapped",
			content: `{"files": {"index.html": "<p>x</p>"}}`,
			want:    domain.Files{"index.html": "<p>x</p>"},
		},
		{
			name:    "Bare map",
			content: `{"index.html": "<p>x</p>", "style.css": "p{}"}`,
			want:    domain.Files{"index.html": "<p>x</p>", "style.css": "p{}"},
		},
		{
			name:    "Plain fences",
			content: "```\n{\"index.html\": \"<p>x</p>\"}\n```",
			want:    domain.Files{"index.html": "<p>x</p>"},
		},
		{
			name:    "Raw html",
			content: "Here you go:\n<!DOCTYPE html><html><body>hi</body></html>\nEnjoy!",
			want:    domain.Files{"index.html": "<!DOCTYPE html><html><body>hi</body></html>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generator.ParseFiles(tt.content, "index.html")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFiles_MissingEntry(t *testing.T) {
	_, err := generator.ParseFiles(`{"files": {"index.html": "   "}}`, "index.html")
	require.ErrorIs(t, err, domain.ErrMissingEntryFile)
}

func TestBuildPrompt_TruncatesAttachments(t *testing.T) {
	long := "data:text/plain;base64," + strings.Repeat("A", 500)
	prompt := generator.BuildPrompt("brief", nil, []domain.Attachment{{Name: "big.txt", URL: long}}, "index.html")

	assert.Contains(t, prompt, "- big.txt: "+long[:100]+"...")
	assert.NotContains(t, prompt, long)
}
