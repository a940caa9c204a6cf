package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
// It echoes the topic and style back as numbered markdown lines so the
// post-processing path is exercised the same way as with a real model.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	topic, style := promptField(prompt.User, "Topic:"), promptField(prompt.User, "Style:")
	var sb strings.Builder
	sb.WriteString("# A poem\n\n")
	sb.WriteString(fmt.Sprintf("1. %s, written as %s\n", topic, style))
	sb.WriteString("2. *a mock line standing in for the model*\n")
	sb.WriteString("3. and the mock falls quiet.\n")
	return sb.String(), nil
}

func promptField(text, key string) string {
	for _, line := range strings.Split(text, "\n") {
		if v, ok := strings.CutPrefix(line, key); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
