package domain

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "a", []string{"a"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"crlf is one break", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"cr then crlf", "a\r\r\nb", []string{"a", "", "b"}},
		{"form feed and vtab", "a\fb\vc", []string{"a", "b", "c"}},
		{"unicode separators", "a\u2028b\u2029c\u0085d", []string{"a", "b", "c", "d"}},
		{"utf8 text", "héllo\nwörld", []string{"héllo", "wörld"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SplitLines(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCorpus_Line(t *testing.T) {
	c := NewCorpus([]string{"a", "", "c"})

	if c.Len() != 3 {
		t.Fatalf("expected len 3, got %d", c.Len())
	}
	if l, ok := c.Line(0); !ok || l != "a" {
		t.Fatalf("Line(0) = %q, %v", l, ok)
	}
	if l, ok := c.Line(1); !ok || l != "" {
		t.Fatalf("Line(1) = %q, %v", l, ok)
	}
	if _, ok := c.Line(3); ok {
		t.Fatalf("expected Line(3) out of range")
	}
	if _, ok := c.Line(-1); ok {
		t.Fatalf("expected Line(-1) out of range")
	}
}

func TestNewCorpus_CopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	c := NewCorpus(in)
	in[0] = "changed"

	if l, _ := c.Line(0); l != "a" {
		t.Fatalf("expected corpus to be isolated from caller, got %q", l)
	}

	out := c.Lines()
	out[1] = "changed"
	if l, _ := c.Line(1); l != "b" {
		t.Fatalf("expected Lines to return a copy, got %q", l)
	}
}
