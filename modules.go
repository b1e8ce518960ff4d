// modules.go implements `imp` resolution and the two host modules the
// evaluator can pre-register: io and fs. Filesystem resolution searches
// BaseDir first, then any BOA_PATH roots added via AddSearchDir. There is
// no network fetching and no cycle-detection error: a recursive `imp` is
// not expected to work and simply observes a partial module rather than
// failing loudly.
package boa

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

func (ip *Interpreter) execImport(n *ImportStmt, env *Environment) error {
	for _, name := range n.Names {
		mod, err := ip.loadModule(name)
		if err != nil {
			return newRuntimeError(n.Position(), "%s", err.Error())
		}
		env.Define(name, ModuleVal(mod))
	}
	return nil
}

func (ip *Interpreter) loadModule(name string) (*ModuleValue, error) {
	if mod, ok := ip.modules[name]; ok {
		return mod, nil
	}

	path, err := ip.resolveModuleFile(name)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read module %s: %v", name, err)
	}

	mod := NewModule(name)
	ip.modules[name] = mod // registered before execution so a recursive `imp` observes this partial module
	ip.modulePath = append(ip.modulePath, name)
	defer func() { ip.modulePath = ip.modulePath[:len(ip.modulePath)-1] }()

	tokens, err := NewLexer(string(src)).Scan()
	if err != nil {
		return nil, err
	}
	prog, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	moduleEnv := NewEnvironment(ip.Global)
	if _, _, err := ip.execStatements(prog.Statements, moduleEnv); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(moduleEnv.vars))
	for k := range moduleEnv.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		mod.Set(k, moduleEnv.vars[k])
	}
	return mod, nil
}

func (ip *Interpreter) resolveModuleFile(name string) (string, error) {
	dirs := append([]string{ip.BaseDir}, ip.searchDirs...)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name+".boa")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("module not found: %s", name)
}

// NewIOModule builds the `io` host module: print, println (alias), input.
func NewIOModule() *ModuleValue {
	mod := NewModule("io")
	printFn := func(interp *Interpreter, args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = FormatValue(a)
		}
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += " "
			}
			out += p
		}
		fmt.Fprintln(interp.Out, out)
		return None, nil
	}
	mod.Set("print", BuiltinVal(&Builtin{Name: "print", Fn: printFn}))
	mod.Set("println", BuiltinVal(&Builtin{Name: "println", Fn: printFn}))
	mod.Set("input", BuiltinVal(&Builtin{Name: "input", Fn: func(interp *Interpreter, args []Value) (Value, error) {
		if len(args) != 0 {
			return None, fmt.Errorf("input expects no arguments, got %d", len(args))
		}
		var line string
		buf := make([]byte, 0, 64)
		b := make([]byte, 1)
		for {
			n, err := interp.In.Read(b)
			if n > 0 {
				if b[0] == '\n' {
					break
				}
				buf = append(buf, b[0])
			}
			if err != nil {
				break
			}
		}
		line = string(buf)
		return StringVal(line), nil
	}}))
	return mod
}

// NewFSModule builds the `fs` host module: read_all_bytes, write_all_bytes,
// read_text, write_text. Every handle opened here is scoped to its call and
// closed via defer, on both the success and error paths.
func NewFSModule() *ModuleValue {
	mod := NewModule("fs")
	mod.Set("read_all_bytes", BuiltinVal(&Builtin{Name: "read_all_bytes", Fn: fsReadAll}))
	mod.Set("read_text", BuiltinVal(&Builtin{Name: "read_text", Fn: fsReadAll}))
	mod.Set("write_all_bytes", BuiltinVal(&Builtin{Name: "write_all_bytes", Fn: fsWriteAll}))
	mod.Set("write_text", BuiltinVal(&Builtin{Name: "write_text", Fn: fsWriteAll}))
	return mod
}

func fsReadAll(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != KindString {
		return None, fmt.Errorf("expects a single string path argument")
	}
	f, err := os.Open(args[0].Str)
	if err != nil {
		return None, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return None, err
	}
	return StringVal(string(data)), nil
}

func fsWriteAll(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 2 || args[0].Kind != KindString || args[1].Kind != KindString {
		return None, fmt.Errorf("expects (path, data) string arguments")
	}
	f, err := os.Create(args[0].Str)
	if err != nil {
		return None, err
	}
	defer f.Close()
	if _, err := f.WriteString(args[1].Str); err != nil {
		return None, err
	}
	return None, nil
}
