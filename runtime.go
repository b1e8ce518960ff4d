// runtime.go composes the bare Interpreter with the host-level wiring a
// real program needs: the core built-in set and the io/fs modules. The
// split keeps the core package embeddable and dependency-free, while
// Runtime is what a CLI or test actually constructs.
package boa

import (
	"io"
	"os"
)

// Runtime is a ready-to-run Interpreter: core built-ins and host modules
// already registered.
type Runtime struct {
	*Interpreter
}

// NewRuntime creates an Interpreter, registers the core built-ins and the
// io/fs host modules, and returns it wrapped as a Runtime.
func NewRuntime(baseDir string, out io.Writer, in io.Reader) *Runtime {
	ip := NewInterpreter(baseDir, out, in)
	RegisterCoreBuiltins(ip)
	ip.RegisterModule(NewIOModule())
	ip.RegisterModule(NewFSModule())
	if path := os.Getenv("BOA_PATH"); path != "" {
		for _, dir := range splitSearchPath(path) {
			if dir != "" {
				ip.AddSearchDir(dir)
			}
		}
	}
	return &Runtime{Interpreter: ip}
}

func splitSearchPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == os.PathListSeparator {
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	parts = append(parts, path[start:])
	return parts
}

// RunSource lexes, parses, and evaluates src in one call, the entry point
// the CLI and REPL both use.
func (rt *Runtime) RunSource(src, filename string) (Value, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return None, err
	}
	prog, err := NewParser(tokens).Parse()
	if err != nil {
		return None, err
	}
	return rt.Run(prog)
}
