package domain

import "unicode/utf8"

// Corpus is the ordered list of seed lines. It is immutable once built.
type Corpus struct {
	lines []string
}

// NewCorpus copies lines so later changes by the caller do not leak in.
func NewCorpus(lines []string) Corpus {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Corpus{lines: cp}
}

// ParseCorpus splits text into lines and builds a Corpus from them.
func ParseCorpus(text string) Corpus {
	return Corpus{lines: SplitLines(text)}
}

func (c Corpus) Len() int { return len(c.lines) }

// Line returns the line at i, or false when i is outside [0, Len()).
func (c Corpus) Line(i int) (string, bool) {
	if i < 0 || i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

// Lines returns a copy of the corpus lines.
func (c Corpus) Lines() []string {
	cp := make([]string, len(c.lines))
	copy(cp, c.lines)
	return cp
}

// SplitLines breaks text at line boundaries and drops the terminators.
// "\r\n" counts as one boundary. A trailing terminator does not add an empty
// final line, so "a\nb\n" and "a\nb" both give ["a", "b"] and "" gives none.
func SplitLines(text string) []string {
	var out []string
	start := 0
	i := 0
	for i < len(text) {
		r, size := rune(text[i]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(text[i:])
		}
		if !isLineBreak(r) {
			i += size
			continue
		}
		out = append(out, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
