package boa

import (
	"strings"
	"testing"
)

func TestLexErrorFormat(t *testing.T) {
	err := &LexError{Line: 3, Col: 5, Msg: "unterminated string literal"}
	want := "LexerError: unterminated string literal at line 3, column 5"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestParseErrorFormat(t *testing.T) {
	err := &ParseError{Line: 1, Col: 1, Msg: "unexpected token EOF in expression"}
	if !strings.HasPrefix(err.Error(), "ParseError: ") {
		t.Fatalf("got %q, want a ParseError-prefixed message", err.Error())
	}
	if !strings.Contains(err.Error(), "at line 1, column 1") {
		t.Fatalf("got %q, want a line/column suffix", err.Error())
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := newRuntimeError(Pos{Line: 7, Col: 2}, "undefined variable '%s'", "foo")
	want := "RuntimeError: undefined variable 'foo' at line 7, column 2"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestSnippetIncludesCaretAndContext(t *testing.T) {
	src := "a = 1\nb = a +\nc = 3\n"
	_, err := NewParser(mustLex(t, src)).Parse()
	if err == nil {
		t.Fatalf("expected a parse error on the dangling '+'")
	}
	snippet := Snippet(err, src)
	if !strings.Contains(snippet, "^") {
		t.Fatalf("snippet should contain a caret, got:\n%s", snippet)
	}
	if !strings.Contains(snippet, "b = a +") {
		t.Fatalf("snippet should show the failing line, got:\n%s", snippet)
	}
}

func TestDiagnosticLineMatchesKindMessageFormat(t *testing.T) {
	_, err := run(t, "undefined_var\n")
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	line := diagnosticLine(err)
	if !strings.HasPrefix(line, "RuntimeError: ") {
		t.Fatalf("got %q, want a RuntimeError-prefixed diagnostic", line)
	}
	if !strings.Contains(line, "at line") || !strings.Contains(line, "column") {
		t.Fatalf("got %q, want a line/column suffix in the diagnostic format", line)
	}
}
