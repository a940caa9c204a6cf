package generator

import (
	"context"
	"log"
	"strings"
)

// Poet 负责选择模板或 LLM 生成诗歌。
type Poet struct {
	rng    Rand
	llm    LLMClient
	logger *log.Logger
}

// NewPoet builds a Poet. A nil llm means template-only composition; a nil
// rng uses DefaultRand.
func NewPoet(rng Rand, llm LLMClient, logger *log.Logger) *Poet {
	if rng == nil {
		rng = DefaultRand
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Poet{rng: rng, llm: llm, logger: logger}
}

// UsesLLM reports whether an LLM client is configured.
func (p *Poet) UsesLLM() bool { return p.llm != nil }

// Generate produces a poem for req. When an LLM is configured it is tried
// first and any failure falls back to the template composer; the only
// errors returned are a done context and HTML rendering failures.
func (p *Poet) Generate(ctx context.Context, req PoemRequest) (Poem, error) {
	if err := ctx.Err(); err != nil {
		return Poem{}, err
	}
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = DefaultStyle
	}
	req.Style = style

	text, source := "", SourceTemplate
	if p.llm != nil {
		t, err := p.fromLLM(ctx, req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Poem{}, ctxErr
			}
			p.logger.Printf("[poet] llm failed, using templates: %v", err)
		} else {
			text, source = t, SourceLLM
		}
	}
	if source == SourceTemplate {
		text = Compose(p.rng, req.Topic, req.Style, req.Lines)
	}

	html, err := RenderHTML(text)
	if err != nil {
		return Poem{}, err
	}
	return Poem{
		Topic:  req.Topic,
		Style:  req.Style,
		Text:   text,
		HTML:   html,
		Source: source,
	}, nil
}

func (p *Poet) fromLLM(ctx context.Context, req PoemRequest) (string, error) {
	raw, err := p.llm.Complete(ctx, BuildPoemPrompt(req))
	if err != nil {
		return "", err
	}
	return PostProcess(raw, req.Lines, p.rng)
}
