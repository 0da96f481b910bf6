package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// QuestionsKey is the list key the generative service is asked to wrap its
// records in.
const QuestionsKey = "questions"

// excerptWindow bounds how much raw text a ParseFailure may carry. Responses
// can be arbitrarily large; diagnostics must not be.
const excerptWindow = 200

type FailureKind string

const (
	// Malformed means no repair strategy produced syntactically valid JSON.
	Malformed FailureKind = "malformed"
	// SchemaMismatch means the text parsed but did not have the expected
	// shape (an object carrying the questions list).
	SchemaMismatch FailureKind = "schema_mismatch"
)

// ParseFailure is the classified outcome of an unusable response.
type ParseFailure struct {
	Kind     FailureKind
	Position int64  // byte offset of the underlying decode error, if known
	Excerpt  string // bounded window around Position, never the full response
}

func (f *ParseFailure) Error() string {
	if f.Excerpt == "" {
		return fmt.Sprintf("parse failure (%s)", f.Kind)
	}
	return fmt.Sprintf("parse failure (%s) at offset %d: %q", f.Kind, f.Position, f.Excerpt)
}

// ParseQuestions turns a raw completion into the list of record mappings, or a
// classified ParseFailure. Repair strategies are tried in a fixed order, first
// success wins:
//
//  1. strip a surrounding markdown code fence and parse the inner text
//  2. parse the text as-is
//  3. drop trailing separators before closing brackets/braces, parse again
//  4. extract the first balanced top-level {...} or [...] span, parse that
//
// The second return value counts list elements dropped because they were not
// objects; those are tolerated per record, not escalated to a page failure.
func ParseQuestions(raw string) ([]RawQuestion, int, *ParseFailure) {
	text := strings.TrimSpace(raw)

	base := text
	if inner, ok := stripFence(text); ok {
		base = inner
	}

	candidates := []string{base}
	if repaired := repairTrailingSeparators(base); repaired != base {
		candidates = append(candidates, repaired)
	}
	if span, ok := firstBalancedSpan(base); ok && span != base {
		candidates = append(candidates, span)
		if repaired := repairTrailingSeparators(span); repaired != span {
			candidates = append(candidates, repaired)
		}
	}

	var firstErr error
	for _, candidate := range candidates {
		var doc any
		if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return validateShape(doc)
	}

	pos := errorOffset(firstErr)
	return nil, 0, &ParseFailure{
		Kind:     Malformed,
		Position: pos,
		Excerpt:  excerptAround(base, pos),
	}
}

// validateShape enforces the expected top level: an object whose QuestionsKey
// holds a list. Non-object list elements are dropped and counted.
func validateShape(doc any) ([]RawQuestion, int, *ParseFailure) {
	if err := ValidateAgainstSchema(BuildEnvelopeSchema(), doc); err != nil {
		return nil, 0, &ParseFailure{Kind: SchemaMismatch}
	}
	list := doc.(map[string]any)[QuestionsKey].([]any)

	questions := make([]RawQuestion, 0, len(list))
	dropped := 0
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		questions = append(questions, RawQuestion(m))
	}
	return questions, dropped, nil
}

// stripFence removes a surrounding ```...``` block, tolerating a language tag
// on the opening fence.
func stripFence(s string) (string, bool) {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// opening fence may carry a tag like "json"
	if idx := strings.IndexByte(inner, '\n'); idx >= 0 {
		tag := strings.TrimSpace(inner[:idx])
		if tag == "" || isFenceTag(tag) {
			inner = inner[idx+1:]
		}
	}
	return strings.TrimSpace(inner), true
}

func isFenceTag(tag string) bool {
	for _, r := range tag {
		if r == '{' || r == '[' || r == '"' {
			return false
		}
	}
	return len(tag) <= 12
}

// repairTrailingSeparators removes commas that immediately precede a closing
// bracket or brace, the most common syntactic mistake in generated JSON.
// String contents are left untouched.
func repairTrailingSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			b.WriteByte(c)
		case ',':
			// skip the comma when only whitespace separates it from a closer
			j := i + 1
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == ']' || s[j] == '}') {
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// firstBalancedSpan scans for the first top-level {...} or [...] span using
// balanced-delimiter matching. Naive greedy matching truncates at the wrong
// closing delimiter when records themselves contain brackets.
func firstBalancedSpan(s string) (string, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
		if s[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func errorOffset(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	return 0
}

// excerptAround returns at most excerptWindow bytes centered on pos.
func excerptAround(s string, pos int64) string {
	if len(s) == 0 {
		return ""
	}
	center := int(pos)
	if center < 0 {
		center = 0
	}
	if center > len(s) {
		center = len(s)
	}
	lo := center - excerptWindow/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + excerptWindow
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}
