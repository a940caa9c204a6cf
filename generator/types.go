package generator

// Defaults applied when a request leaves style or lines unset.
const (
	DefaultStyle = "free verse"
	DefaultLines = 8
)

// Sources reported on a Poem.
const (
	SourceTemplate = "template"
	SourceLLM      = "llm"
)

// PoemRequest describes the poem a caller wants. Topic is expected to be
// trimmed and non-empty; the server validates it before calling in.
type PoemRequest struct {
	Topic string
	Style string
	Lines int
}

// Poem is the generated text plus its rendered form.
type Poem struct {
	Topic  string
	Style  string
	Text   string
	HTML   string
	Source string
}
