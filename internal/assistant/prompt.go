package assistant

import (
	"regexp"
	"strings"

	"aihub.app/api/internal/model"
)

const textVar = "text"

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Prompt is the pair of messages sent to a provider.
type Prompt struct {
	System string
	User   string
}

// Build assembles the prompt for a tool. instructions are appended to the
// tool's system prompt. vars fill {{name}} placeholders in the user template;
// unknown placeholders are left untouched.
func Build(tool model.ResolvedTool, text string, vars map[string]string, instructions string) Prompt {
	return Prompt{
		System: joinSections(tool.SystemPrompt, instructions),
		User:   RenderTemplate(tool.UserPrompt, text, vars),
	}
}

// RenderTemplate substitutes placeholders. When the template has no {{text}}
// the text is appended after a blank line.
func RenderTemplate(template, text string, vars map[string]string) string {
	hasText := false
	out := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if name == textVar {
			hasText = true
			return text
		}
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})

	if hasText {
		return out
	}
	return joinSections(out, text)
}

func joinSections(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
