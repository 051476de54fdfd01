package generator

import (
	"fmt"
	"strings"

	"go.trai.ch/courier/internal/core/domain"
)

const systemPrompt = "You are an expert web developer who creates production-ready single-page applications. " +
	"You always respond with valid JSON containing the file contents."

// attachmentPreview is how much of an attachment reference is quoted in the prompt.
// Data URIs can be large; the page fetches the full content itself.
const attachmentPreview = 100

func buildPrompt(brief string, checks []string, attachments []domain.Attachment, entryFile string) string {
	var b strings.Builder

	b.WriteString("You are an expert web developer. Create a complete, minimal, single-page web application ")
	b.WriteString("based on the following requirements.\n\n")
	fmt.Fprintf(&b, "**Brief**: %s\n\n", brief)

	b.WriteString("**Checks that must pass**:\n")
	for _, check := range checks {
		fmt.Fprintf(&b, "- %s\n", check)
	}

	if len(attachments) > 0 {
		b.WriteString("\nAttachments:\n")
		for _, att := range attachments {
			ref := att.URL
			if len(ref) > attachmentPreview {
				ref = ref[:attachmentPreview] + "..."
			}
			fmt.Fprintf(&b, "- %s: %s\n", att.Name, ref)
		}
	}

	fmt.Fprintf(&b, `
**Requirements**:
1. Create a single-page HTML application (%[1]s)
2. Include all CSS inline in a <style> tag
3. Include all JavaScript inline in a <script> tag
4. Use modern, clean, responsive design
5. Ensure all checks will pass
6. Handle attachments by fetching them from the provided data URIs
7. Include proper error handling

**OUTPUT FORMAT**:
Respond with ONLY valid JSON in this exact format:
{
  "files": {
    "%[1]s": "<!DOCTYPE html>...",
    "README.md": "# Project Title\n\nDescription..."
  }
}

The README.md must include a title, description, setup and usage instructions,
a brief code explanation and a reference to the MIT License.
`, entryFile)

	return b.String()
}
