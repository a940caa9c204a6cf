package generator

import (
	"fmt"
	"strings"
)

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

// BuildPoemPrompt asks the model for exactly TargetLines(req.Lines) plain
// lines about the topic, written in the requested style.
func BuildPoemPrompt(req PoemRequest) Prompt {
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = DefaultStyle
	}
	n := TargetLines(req.Lines)

	var sb strings.Builder
	sb.WriteString("You are a poet. Reply with the poem only.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString(fmt.Sprintf("- Exactly %d lines, one line of verse per line.\n", n))
	sb.WriteString("- No title, no numbering, no bullet points, no markdown.\n")
	sb.WriteString("- The first line must mention the topic.\n")
	sb.WriteString("- The last line closes the poem.\n")

	user := fmt.Sprintf("Topic: %s\nStyle: %s\nWrite a %d-line poem.", req.Topic, style, n)

	return Prompt{
		System: sb.String(),
		User:   user,
	}
}
