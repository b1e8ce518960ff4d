package boa

import (
	"strings"
	"testing"
)

func TestFormatValueLists(t *testing.T) {
	if got := FormatValue(ListVal([]Value{IntVal(1), IntVal(2)})); got != "[1, 2]" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatValueQuotesStringsInsideCollections(t *testing.T) {
	got := FormatValue(ListVal([]Value{StringVal("a")}))
	if got != `["a"]` {
		t.Fatalf("got %q, want a quoted string inside the list", got)
	}
	if FormatValue(StringVal("a")) != "a" {
		t.Fatalf("a bare top-level string should print unquoted")
	}
}

func TestColorizeValueWrapsWithAnsiCodes(t *testing.T) {
	got := ColorizeValue(IntVal(42))
	if !strings.Contains(got, "42") || !strings.Contains(got, ansiReset) {
		t.Fatalf("got %q, want the rendered value plus a reset code", got)
	}
}
