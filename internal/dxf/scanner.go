package dxf

import (
	"strconv"
	"strings"
)

// pair is the file's atomic unit: a group code line followed by its value line.
type pair struct {
	code  string
	value string
}

// tokenize splits raw DXF text into (code, value) pairs. Lines are trimmed
// (CRLF tolerated); an odd trailing line is dropped.
func tokenize(text string) []pair {
	lines := strings.Split(text, "\n")
	// A final newline produces one empty trailing element; drop it so it
	// cannot shift the code/value alignment.
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	pairs := make([]pair, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		pairs = append(pairs, pair{
			code:  strings.TrimSpace(lines[i]),
			value: strings.TrimSpace(lines[i+1]),
		})
	}
	return pairs
}

// scanner is a cursor over the pair stream. Running off the end never errors;
// callers observe it through the ok return.
type scanner struct {
	pairs []pair
	off   int
}

func (s *scanner) peek() (pair, bool) {
	if s.off >= len(s.pairs) {
		return pair{}, false
	}
	return s.pairs[s.off], true
}

func (s *scanner) next() (pair, bool) {
	p, ok := s.peek()
	if ok {
		s.off++
	}
	return p, ok
}

// skipFields consumes pairs up to, but not including, the next code-0 pair,
// which belongs to the next entity.
func (s *scanner) skipFields() {
	for {
		p, ok := s.peek()
		if !ok || p.code == "0" {
			return
		}
		s.off++
	}
}

// isKeyword compares a tag value against a format keyword. Producing software
// is inconsistent about casing, so all keyword matching is case-insensitive.
func isKeyword(value, keyword string) bool {
	return strings.EqualFold(value, keyword)
}

// floatOrZero is the single leniency point for numeric fields: malformed
// literals decode as 0.0 rather than failing the parse.
func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// intOrZero mirrors floatOrZero for integer fields. Some producers write
// integer codes with a decimal point, so fall back through float syntax.
func intOrZero(s string) int {
	t := strings.TrimSpace(s)
	if v, err := strconv.Atoi(t); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return int(v)
	}
	return 0
}
