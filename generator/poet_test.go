package generator

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

type failingLLM struct{ err error }

func (f failingLLM) Complete(context.Context, Prompt) (string, error) { return "", f.err }

type recordingLLM struct {
	prompt Prompt
	reply  string
}

func (r *recordingLLM) Complete(_ context.Context, p Prompt) (string, error) {
	r.prompt = p
	return r.reply, nil
}

func TestPoetTemplate(t *testing.T) {
	p := NewPoet(NewSeededRand(1), nil, nil)
	poem, err := p.Generate(context.Background(), PoemRequest{Topic: "autumn", Lines: 6})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if poem.Source != SourceTemplate {
		t.Errorf("source = %q, want %q", poem.Source, SourceTemplate)
	}
	if poem.Style != DefaultStyle {
		t.Errorf("style = %q, want default %q", poem.Style, DefaultStyle)
	}
	if n := len(strings.Split(poem.Text, "\n")); n != 6 {
		t.Errorf("got %d lines, want 6", n)
	}
	if want := Compose(NewSeededRand(1), "autumn", DefaultStyle, 6); poem.Text != want {
		t.Errorf("text differs from seeded Compose:\n%s\n---\n%s", poem.Text, want)
	}
	if !strings.Contains(poem.HTML, "<br>") {
		t.Errorf("html missing line breaks: %q", poem.HTML)
	}
}

func TestPoetLLM(t *testing.T) {
	llm := &recordingLLM{reply: "the sea at dawn\nwaves\nand gulls\nthe end"}
	p := NewPoet(NewSeededRand(1), llm, nil)
	poem, err := p.Generate(context.Background(), PoemRequest{Topic: "the sea", Style: "haiku", Lines: 4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if poem.Source != SourceLLM {
		t.Errorf("source = %q, want %q", poem.Source, SourceLLM)
	}
	if poem.Text != llm.reply {
		t.Errorf("text = %q, want %q", poem.Text, llm.reply)
	}
	if !strings.Contains(llm.prompt.User, "Style: haiku") || !strings.Contains(llm.prompt.User, "Topic: the sea") {
		t.Errorf("prompt missing topic/style: %q", llm.prompt.User)
	}
	if !strings.Contains(llm.prompt.System, "Exactly 4 lines") {
		t.Errorf("prompt missing line count: %q", llm.prompt.System)
	}
}

func TestPoetMockLLM(t *testing.T) {
	p := NewPoet(NewSeededRand(2), MockLLM{}, nil)
	poem, err := p.Generate(context.Background(), PoemRequest{Topic: "autumn", Style: "ballad", Lines: 8})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lines := strings.Split(poem.Text, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	if lines[0] != "autumn, written as ballad" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[7] != "and the mock falls quiet." {
		t.Errorf("last line = %q", lines[7])
	}
}

func TestPoetFallsBackOnLLMError(t *testing.T) {
	var logs bytes.Buffer
	p := NewPoet(NewSeededRand(1), failingLLM{err: errors.New("boom")}, log.New(&logs, "", 0))
	poem, err := p.Generate(context.Background(), PoemRequest{Topic: "autumn", Lines: 5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if poem.Source != SourceTemplate {
		t.Errorf("source = %q, want fallback to %q", poem.Source, SourceTemplate)
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Errorf("fallback not logged: %q", logs.String())
	}
}

func TestPoetFallsBackOnEmptyLLMReply(t *testing.T) {
	p := NewPoet(NewSeededRand(1), &recordingLLM{reply: "  \n"}, log.New(&bytes.Buffer{}, "", 0))
	poem, err := p.Generate(context.Background(), PoemRequest{Topic: "autumn", Lines: 4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if poem.Source != SourceTemplate {
		t.Errorf("source = %q, want %q", poem.Source, SourceTemplate)
	}
}

func TestPoetCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPoet(nil, nil, nil)
	if _, err := p.Generate(ctx, PoemRequest{Topic: "autumn"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
