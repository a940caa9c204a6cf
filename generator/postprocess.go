package generator

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyPoem is returned when the model produced no usable lines.
var ErrEmptyPoem = errors.New("model returned an empty poem")

var (
	listMarkerRe = regexp.MustCompile(`^(?:[-*+]\s+|\d+[.)]\s+)`)
	emphasis     = strings.NewReplacer("**", "", "__", "", "*", "", "`", "")
)

// TargetLines is the line count Compose produces for lines.
func TargetLines(lines int) int {
	return MiddleCount(lines) + 2
}

// PostProcess 把模型输出整理成与模板相同的形状：
// plain lines, exactly TargetLines(lines) of them. Missing lines are filled
// with middles from the fixed pool before the last line; a single line gets
// a fixed closer. Extra lines are cut from the middle so the model's own
// closing line survives.
func PostProcess(raw string, lines int, rng Rand) (string, error) {
	if rng == nil {
		rng = DefaultRand
	}
	out := cleanLines(raw)
	if len(out) == 0 {
		return "", ErrEmptyPoem
	}

	n := TargetLines(lines)
	if len(out) > n {
		out = append(out[:n-1], out[len(out)-1])
	}
	if len(out) == 1 {
		out = append(out, closerLines[rng.IntN(len(closerLines))])
	}
	for len(out) < n {
		last := out[len(out)-1]
		out = append(out[:len(out)-1], middleLines[rng.IntN(len(middleLines))], last)
	}
	return strings.Join(out, "\n"), nil
}

func cleanLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || line == "---" {
			continue
		}
		line = listMarkerRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(emphasis.Replace(line))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
