/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when the reply contains no JSON at all.
	ErrEmpty = errors.New("empty structured result")

	// ErrInvalid is returned when the decoded value fails its own validation.
	ErrInvalid = errors.New("invalid structured result")
)

// Validator is implemented by result types that have required fields.
type Validator interface {
	Validate() error
}

// ExtractJSON returns the JSON payload in text. In order of preference it takes
// the body of the first ```json fence, the body of the first bare ``` fence,
// or the span from the first '{' to the last '}'. Otherwise it returns text trimmed.
func ExtractJSON(text string) string {
	if body, ok := fenced(text, "```json"); ok {
		return body
	}
	if body, ok := fenced(text, "```"); ok {
		return body
	}

	text = strings.TrimSpace(text)
	start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// fenced returns the trimmed content between an opening marker line and the
// next line consisting of ``` (or the end of text when unclosed).
func fenced(text, marker string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != marker {
			continue
		}
		var body []string
		for _, l := range lines[i+1:] {
			if strings.TrimSpace(l) == "```" {
				break
			}
			body = append(body, l)
		}
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}
	return "", false
}

// Extract decodes the JSON payload of text into a T and validates it.
func Extract[T any](text string) (T, error) {
	var out T

	payload := ExtractJSON(text)
	if payload == "" {
		return out, ErrEmpty
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return out, fmt.Errorf("decoding structured result: %w", err)
	}

	if v, ok := any(out).(Validator); ok {
		if err := v.Validate(); err != nil {
			return out, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	} else if v, ok := any(&out).(Validator); ok {
		if err := v.Validate(); err != nil {
			return out, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return out, nil
}
