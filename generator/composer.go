package generator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// {topic} is replaced verbatim, {Topic} title-cased.
var openingTemplates = []string{
	"In the hush of {topic}, something stirs",
	"{Topic} drifts through the morning light",
	"Among whispers of {topic}, a thought unfolds",
}

var middleLines = []string{
	"footsteps echo like small ideas",
	"a question hums beneath the air",
	"shadows trace invisible patterns",
	"time folds softly at the edges",
}

var closerLines = []string{
	"and silence blooms again.",
	"so the night learns to listen.",
	"until the world forgets its weight.",
}

// Openings returns the opening lines for topic, in pool order.
func Openings(topic string) []string {
	// cases.Caser 有状态，不能跨 goroutine 共享，每次新建。
	title := cases.Title(language.Und).String(topic)
	out := make([]string, len(openingTemplates))
	for i, t := range openingTemplates {
		t = strings.ReplaceAll(t, "{topic}", topic)
		out[i] = strings.ReplaceAll(t, "{Topic}", title)
	}
	return out
}

// MiddleCount is the number of middle lines Compose emits for lines.
func MiddleCount(lines int) int {
	// lines-2 would wrap for math.MinInt.
	if lines <= 4 {
		return 2
	}
	return lines - 2
}

// Compose assembles a poem: one opening, MiddleCount(lines) middles drawn
// with replacement, one closer. style is accepted but does not change the
// output. Draws happen in line order so a seeded rng reproduces the poem.
func Compose(rng Rand, topic, style string, lines int) string {
	_ = style
	if rng == nil {
		rng = DefaultRand
	}
	openings := Openings(topic)
	n := MiddleCount(lines)

	poem := make([]string, 0, n+2)
	poem = append(poem, openings[rng.IntN(len(openings))])
	for i := 0; i < n; i++ {
		poem = append(poem, middleLines[rng.IntN(len(middleLines))])
	}
	poem = append(poem, closerLines[rng.IntN(len(closerLines))])
	return strings.Join(poem, "\n")
}

// GeneratePoem composes with the process-wide random source. An empty
// style falls back to DefaultStyle.
func GeneratePoem(topic, style string, lines int) string {
	if style == "" {
		style = DefaultStyle
	}
	return Compose(DefaultRand, topic, style, lines)
}
