// Package extract recovers structured values from raw oracle output and
// validates them against a schema. The oracle is untrusted: its job is
// strict rejection, not best-effort coercion. There is no repair or
// re-prompt loop; a parse or schema failure is terminal for the caller.
//
// Two output shapes are recognized:
//   - a single top-level brace-delimited JSON object (Object/DecodeObject)
//   - a line-oriented labeled record (Labeled), used by the concept-tag
//     summary format
package extract

import (
	"encoding/json"
	"strings"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

// Object locates the first balanced {...} span in raw, tolerating nested
// braces and braces inside JSON string literals. When no balanced span is
// found it falls back to stripping a leading/trailing fenced block and
// treating the remainder as the candidate. The candidate must be valid
// JSON or a parse error is returned.
func Object(raw string) (json.RawMessage, error) {
	candidate, ok := balancedSpan(raw)
	if !ok {
		candidate = stripFences(raw)
	}

	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil, apperr.New(apperr.KindParse, "no JSON object found in oracle output")
	}
	if !json.Valid([]byte(candidate)) {
		return nil, apperr.New(apperr.KindParse, "oracle output is not valid JSON")
	}
	return json.RawMessage(candidate), nil
}

// balancedSpan returns the first top-level {...} span of s.
func balancedSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= 2 {
		return s
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
