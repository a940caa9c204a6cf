package generator

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestPostProcessCleansMarkdown(t *testing.T) {
	raw := "# Title\n\n1. **first** line\n- second line\n\n* third `line`\n"
	got, err := PostProcess(raw, 3, &seqRand{vals: []int{0}})
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	want := "first line\nsecond line\nfootsteps echo like small ideas\nthird line"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPostProcessShape(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		lines     int
		wantFirst string
		wantLast  string
	}{
		{"exact", "a\nb\nc\nd", 4, "a", "d"},
		{"too many", "a\nb\nc\nd\ne\nf\ng", 5, "a", "g"},
		{"too few", "a\nz", 8, "a", "z"},
		{"single line", "only", 4, "only", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := PostProcess(c.raw, c.lines, NewSeededRand(1))
			if err != nil {
				t.Fatalf("PostProcess: %v", err)
			}
			lines := strings.Split(got, "\n")
			if len(lines) != TargetLines(c.lines) {
				t.Fatalf("got %d lines, want %d", len(lines), TargetLines(c.lines))
			}
			if lines[0] != c.wantFirst {
				t.Errorf("first = %q, want %q", lines[0], c.wantFirst)
			}
			last := lines[len(lines)-1]
			if c.wantLast == "" {
				if !slices.Contains(closerLines, last) {
					t.Errorf("last = %q, want a fixed closer", last)
				}
			} else if last != c.wantLast {
				t.Errorf("last = %q, want %q", last, c.wantLast)
			}
		})
	}
}

func TestPostProcessEmpty(t *testing.T) {
	for _, raw := range []string{"", "  \n\n", "# only a title\n---\n"} {
		if _, err := PostProcess(raw, 8, nil); !errors.Is(err, ErrEmptyPoem) {
			t.Errorf("PostProcess(%q) err = %v, want ErrEmptyPoem", raw, err)
		}
	}
}
