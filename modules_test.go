package boa

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImportFilesystemModule(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "greet.boa")
	if err := os.WriteFile(modPath, []byte("fn hello():\n    \"hi\"\n"), 0o644); err != nil {
		t.Fatalf("write module file: %v", err)
	}

	var out bytes.Buffer
	rt := NewRuntime(dir, &out, strings.NewReader(""))
	src := "imp greet\nprint(greet.hello())\n"
	if _, err := rt.RunSource(src, "<test>"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "hi\n" {
		t.Fatalf("got %q, want %q", out.String(), "hi\n")
	}
}

func TestImportMissingModuleIsRuntimeError(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	rt := NewRuntime(dir, &out, strings.NewReader(""))
	if _, err := rt.RunSource("imp nope\n", "<test>"); err == nil {
		t.Fatalf("expected an error for a module that does not exist")
	}
}

func TestImportPreregisteredModuleShadowsFilesystem(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	rt := NewRuntime(dir, &out, strings.NewReader(""))
	src := "imp io\nio.print(\"via io module\")\n"
	if _, err := rt.RunSource(src, "<test>"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "via io module\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestFSModuleReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	var out bytes.Buffer
	rt := NewRuntime(dir, &out, strings.NewReader(""))
	src := "imp fs\nfs.write_text(\"" + escapeForBoa(path) + "\", \"payload\")\nprint(fs.read_text(\"" + escapeForBoa(path) + "\"))\n"
	if _, err := rt.RunSource(src, "<test>"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "payload\n" {
		t.Fatalf("got %q", out.String())
	}
}

func escapeForBoa(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

func TestIOInputReadsOneLine(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime(".", &out, strings.NewReader("typed line\nsecond line\n"))
	src := "imp io\nprint(io.input())\n"
	if _, err := rt.RunSource(src, "<test>"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "typed line\n" {
		t.Fatalf("got %q", out.String())
	}
}
