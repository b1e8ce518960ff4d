package boa

import "testing"

func TestBuiltinLen(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`print(len("hello"))`, "5\n"},
		{`print(len([1,2,3]))`, "3\n"},
		{`print(len({1:2,3:4}))`, "2\n"},
	}
	for _, c := range cases {
		if got := mustRun(t, c.src+"\n"); got != c.want {
			t.Fatalf("len(%q): got %q, want %q", c.src, got, c.want)
		}
	}
}

func TestBuiltinStrIntFloat(t *testing.T) {
	if got := mustRun(t, "print(str(42))\n"); got != "42\n" {
		t.Fatalf("got %q", got)
	}
	if got := mustRun(t, "print(int(\"7\"))\n"); got != "7\n" {
		t.Fatalf("got %q", got)
	}
	if got := mustRun(t, "print(float(\"2.5\"))\n"); got != "2.5\n" {
		t.Fatalf("got %q", got)
	}
	if got := mustRun(t, "print(int(3.9))\n"); got != "3\n" {
		t.Fatalf("int() truncates toward zero, got %q", got)
	}
}

func TestBuiltinType(t *testing.T) {
	cases := map[string]string{
		"none":       "none",
		"true":       "bool",
		"1":          "int",
		"1.5":        "float",
		`"s"`:        "string",
		"[1]":        "list",
		"{1: 2}":     "dict",
	}
	for expr, want := range cases {
		src := "print(type(" + expr + "))\n"
		if got := mustRun(t, src); got != want+"\n" {
			t.Fatalf("type(%s): got %q, want %q", expr, got, want+"\n")
		}
	}
}

func TestBuiltinRangeVariants(t *testing.T) {
	if got := mustRun(t, "print(range(3))\n"); got != "[0, 1, 2]\n" {
		t.Fatalf("got %q", got)
	}
	if got := mustRun(t, "print(range(1, 4))\n"); got != "[1, 2, 3]\n" {
		t.Fatalf("got %q", got)
	}
	if got := mustRun(t, "print(range(10, 0, -3))\n"); got != "[10, 7, 4, 1]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinRangeZeroStepIsError(t *testing.T) {
	if _, err := run(t, "range(1, 5, 0)\n"); err == nil {
		t.Fatalf("expected an error for a zero step")
	}
}

func TestBuiltinAppendMutatesInPlace(t *testing.T) {
	src := "xs = [1]\nys = xs\nappend(xs, 2)\nprint(ys)\n"
	if got := mustRun(t, src); got != "[1, 2]\n" {
		t.Fatalf("append() should mutate the shared list, got %q", got)
	}
}

func TestListAppendMethod(t *testing.T) {
	src := "xs = [1]\nxs.append(2)\nprint(xs)\nprint(xs.length)\n"
	if got := mustRun(t, src); got != "[1, 2]\n2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStringUpperLower(t *testing.T) {
	src := "print(\"Hi\".upper())\nprint(\"Hi\".lower())\nprint(\"Hi\".length)\n"
	if got := mustRun(t, src); got != "HI\nhi\n2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBuiltinPrintJoinsArgsWithSpaces(t *testing.T) {
	if got := mustRun(t, `print(1, "two", 3)`+"\n"); got != "1 two 3\n" {
		t.Fatalf("got %q", got)
	}
}
