package assistant

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidResponse is returned when model output holds no usable JSON.
var ErrInvalidResponse = errors.New("ai response did not contain valid json")

var fencedJSONRe = regexp.MustCompile("(?is)```json\\s*(.*?)```")

// ExtractJSON returns the first JSON document in free text. A fenced json
// block wins; otherwise the first array or object that parses is used.
func ExtractJSON(text string) (string, error) {
	candidates := jsonCandidates(text)
	if len(candidates) == 0 {
		return "", ErrInvalidResponse
	}
	return candidates[0], nil
}

// jsonCandidates lists every JSON array or object embedded in text, fenced
// block first and then in order of appearance. Bracketed prose that is not
// JSON is skipped.
func jsonCandidates(text string) []string {
	var out []string
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		if candidate := strings.TrimSpace(m[1]); json.Valid([]byte(candidate)) {
			out = append(out, candidate)
		}
	}

	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		var raw json.RawMessage
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		out = append(out, string(raw))
		i += int(dec.InputOffset()) - 1
	}
	return out
}

// firstList decodes the first candidate in text that holds a list of T.
func firstList[T any](text, key string) ([]T, error) {
	for _, candidate := range jsonCandidates(text) {
		if list, err := decodeList[T](candidate, key); err == nil {
			return list, nil
		}
	}
	return nil, ErrInvalidResponse
}

// decodeList accepts a bare array, an object wrapping it under key, or a
// single valid item standing alone.
func decodeList[T any](raw, key string) ([]T, error) {
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return nil, ErrInvalidResponse
	}
	if inner, ok := wrapped[key]; ok {
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, ErrInvalidResponse
		}
		return list, nil
	}

	var item T
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, ErrInvalidResponse
	}
	if err := validate.Struct(item); err != nil {
		return nil, ErrInvalidResponse
	}
	return []T{item}, nil
}
