// Package prompt builds the LLM requests for each pipeline stage.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt is a system/user prompt pair ready for llm.GenerateRequest.
type Prompt struct {
	System string
	User   string
}

// Text renders both parts as a single document for the prompt log.
func (p Prompt) Text() string {
	var b strings.Builder
	if p.System != "" {
		b.WriteString("### SYSTEM\n")
		b.WriteString(p.System)
		b.WriteString("\n\n")
	}
	b.WriteString("### USER\n")
	b.WriteString(p.User)
	b.WriteString("\n")
	return b.String()
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none)\n"
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
