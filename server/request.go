package server

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	errTopicType = errors.New("topic must be a string")
	errStyleType = errors.New("style must be a string")
	errLinesType = errors.New("lines must be an integer")
)

// poemParams is the decoded /api/poem body after defaulting.
type poemParams struct {
	Topic string
	Style string
	Lines int
}

// parsePoemBody decodes the request body loosely: a body that is not a JSON
// object counts as {}, and falsy values (null, false, 0, "", [], {}) count
// as absent.
func parsePoemBody(body []byte, defaultStyle string, defaultLines int) (poemParams, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		fields = map[string]any{}
	}

	var p poemParams
	var err error
	if p.Topic, err = stringField(fields["topic"], "", errTopicType); err != nil {
		return poemParams{}, err
	}
	if p.Style, err = stringField(fields["style"], defaultStyle, errStyleType); err != nil {
		return poemParams{}, err
	}
	if p.Lines, err = linesField(fields["lines"], defaultLines); err != nil {
		return poemParams{}, err
	}
	return p, nil
}

func stringField(v any, def string, typeErr error) (string, error) {
	if falsy(v) {
		return strings.TrimSpace(def), nil
	}
	s, ok := v.(string)
	if !ok {
		return "", typeErr
	}
	return strings.TrimSpace(s), nil
}

// linesField coerces lines the way int() would: numbers truncate toward
// zero, numeric strings parse, true is 1.
func linesField(v any, def int) (int, error) {
	if falsy(v) {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, errLinesType
		}
		// 超出范围的值先截断，后续由 max_lines 检查拒绝。
		x = math.Trunc(x)
		if x > math.MaxInt32 {
			return math.MaxInt32, nil
		}
		if x < math.MinInt32 {
			return math.MinInt32, nil
		}
		return int(x), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				if strings.HasPrefix(strings.TrimSpace(x), "-") {
					return math.MinInt32, nil
				}
				return math.MaxInt32, nil
			}
			return 0, errLinesType
		}
		return n, nil
	case bool:
		return 1, nil
	default:
		return 0, errLinesType
	}
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}
