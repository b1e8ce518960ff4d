package boa

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestNewRuntimeRegistersCoreBuiltinsAndModules(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime(".", &out, strings.NewReader(""))
	if _, ok := rt.Global.Get("print"); !ok {
		t.Fatalf("expected 'print' to be registered")
	}
	if _, ok := rt.modules["io"]; !ok {
		t.Fatalf("expected the io module to be pre-registered")
	}
	if _, ok := rt.modules["fs"]; !ok {
		t.Fatalf("expected the fs module to be pre-registered")
	}
}

func TestRuntimeHonorsBoaPathEnvVar(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/extra.boa", []byte("fn ping():\n    \"pong\"\n"), 0o644); err != nil {
		t.Fatalf("write module file: %v", err)
	}
	t.Setenv("BOA_PATH", dir)

	var out bytes.Buffer
	rt := NewRuntime(t.TempDir(), &out, strings.NewReader(""))
	src := "imp extra\nprint(extra.ping())\n"
	if _, err := rt.RunSource(src, "<test>"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "pong\n" {
		t.Fatalf("got %q, want module resolution to fall through to a BOA_PATH root", out.String())
	}
}

func TestRunSourcePropagatesLexAndParseErrors(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime(".", &out, strings.NewReader(""))
	if _, err := rt.RunSource("\"unterminated\n", "<test>"); err == nil {
		t.Fatalf("expected a lex error to propagate")
	}
	if _, err := rt.RunSource("1 +\n", "<test>"); err == nil {
		t.Fatalf("expected a parse error to propagate")
	}
}
