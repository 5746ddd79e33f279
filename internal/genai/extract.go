package genai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Validator checks a parsed value after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type Validator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw model output.
// Model responses are free text that is expected to contain embedded
// structured data, so extraction tolerates surrounding prose: markdown
// code fences are stripped and the first balanced { ... } block is
// parsed. If validator is non-nil, the extracted value is validated
// before return. Any failure to locate or parse the expected shape is
// an ErrFormat, never a partial value.
func ExtractJSON[T any](raw string, validator Validator[T]) (T, error) {
	var zero T

	cleaned := StripCodeFences(raw)
	jsonStr := extractObjectBlock(cleaned)
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrFormat)
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrFormat, err)
		}
	}

	return result, nil
}

// ExtractJSONArray extracts a JSON array of T from raw model output by
// locating the outermost array delimiters: the substring between the
// first '[' and the last ']'. The response is not guaranteed to be pure
// struct data, so everything outside that region is discarded.
func ExtractJSONArray[T any](raw string) ([]T, error) {
	cleaned := StripCodeFences(raw)

	start := strings.IndexByte(cleaned, '[')
	end := strings.LastIndexByte(cleaned, ']')
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: no bracketed array found in response", ErrFormat)
	}

	var result []T
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return result, nil
}

// StripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func StripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// extractObjectBlock finds the first balanced { ... } block in the text.
func extractObjectBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// SummarySections is the parsed form of the two-section summary format.
type SummarySections struct {
	Quick       string
	KeyConcepts string
}

// keyConceptsHeader matches the "key concepts" header line that separates
// the quick summary from the key-concepts section. Models vary the exact
// casing and markup, so the match is case-insensitive and tolerates
// leading markdown heading or emphasis markers.
var keyConceptsHeader = regexp.MustCompile(`(?im)^[#*\s]*key\s+concepts\b.*$`)

// SplitSummarySections splits a free-text summary into its quick-summary
// and key-concepts sections by locating the header line. Returns ErrFormat
// when the header cannot be found.
func SplitSummarySections(raw string) (SummarySections, error) {
	loc := keyConceptsHeader.FindStringIndex(raw)
	if loc == nil {
		return SummarySections{}, fmt.Errorf("%w: no key-concepts header found in summary", ErrFormat)
	}

	quick := strings.TrimSpace(raw[:loc[0]])
	rest := raw[loc[1]:]
	concepts := strings.TrimSpace(rest)

	if quick == "" && concepts == "" {
		return SummarySections{}, fmt.Errorf("%w: summary sections are empty", ErrFormat)
	}

	return SummarySections{Quick: quick, KeyConcepts: concepts}, nil
}
