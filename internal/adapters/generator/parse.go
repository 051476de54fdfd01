package generator

import (
	"encoding/json"
	"strings"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseFiles extracts the file map from a completion.
//
// Accepted shapes, in order: {"files": {...}}, a bare {"name": "content"} map,
// and, when the text is not JSON at all, a single HTML document taken as the entry file.
func parseFiles(content, entryFile string) (domain.Files, error) {
	text := stripFences(content)

	var wrapped struct {
		Files map[string]string `json:"files"`
	}
	if err := json.Unmarshal([]byte(text), &wrapped); err == nil && wrapped.Files != nil {
		return requireEntry(wrapped.Files, entryFile)
	}

	var bare map[string]string
	if err := json.Unmarshal([]byte(text), &bare); err == nil && len(bare) > 0 {
		return requireEntry(bare, entryFile)
	}

	if html, ok := extractHTML(text); ok {
		return domain.Files{entryFile: html}, nil
	}

	return nil, zerr.With(zerr.Wrap(domain.ErrMalformedOutput, "parse output"), "preview", preview(text))
}

func requireEntry(files map[string]string, entryFile string) (domain.Files, error) {
	if strings.TrimSpace(files[entryFile]) == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingEntryFile, "validate output"), "entry_file", entryFile)
	}
	return domain.Files(files), nil
}

func stripFences(content string) string {
	text := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(text, "```json"):
		text = text[len("```json"):]
	case strings.HasPrefix(text, "```"):
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func extractHTML(text string) (string, bool) {
	start := strings.Index(text, "<!DOCTYPE html>")
	if start < 0 {
		start = strings.Index(text, "<html")
	}
	end := strings.LastIndex(text, "</html>")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+len("</html>")], true
}

func preview(text string) string {
	const limit = 120
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
