// interpreter.go is the tree-walking evaluator's core: the Interpreter
// type, statement dispatch, and block execution.
//
// Non-local control flow (only `ret`; Boa has no `break`/`continue`) is
// modeled as an explicit result variant threaded back up through ordinary
// Go return values rather than a panic/recover unwind: a plain tree-walker
// has no bytecode call stack to jump across, so a threaded (Value, flow,
// error) return at every exec site is both simpler and more idiomatic here.
package boa

import (
	"io"
)

// flowKind tags how a block/statement finished.
type flowKind int

const (
	flowNormal flowKind = iota
	flowReturn
)

// flow carries non-local control out of exec*, alongside the normal error
// channel used for RuntimeErrors.
type flow struct {
	kind  flowKind
	value Value
}

// Interpreter holds the global scope and the host-configured I/O sinks and
// module search root. It is the bare evaluator core; RegisterBuiltin and
// RegisterModule let a host (runtime.go, or a test) seed it before running
// anything.
type Interpreter struct {
	Global  *Environment
	BaseDir string
	Out     io.Writer
	In      io.Reader

	modules    map[string]*ModuleValue
	modulePath []string // in-flight `imp` targets, innermost last
	searchDirs []string // BOA_PATH roots, consulted after BaseDir
}

// NewInterpreter creates an evaluator with an empty global scope.
func NewInterpreter(baseDir string, out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{
		Global:  NewEnvironment(nil),
		BaseDir: baseDir,
		Out:     out,
		In:      in,
		modules: map[string]*ModuleValue{},
	}
}

// RegisterBuiltin seeds a global built-in callable.
func (ip *Interpreter) RegisterBuiltin(name string, fn NativeFunc) {
	ip.Global.Define(name, BuiltinVal(&Builtin{Name: name, Fn: fn}))
}

// RegisterModule pre-registers a host module (io, fs) so `imp` resolves it
// without touching the filesystem.
func (ip *Interpreter) RegisterModule(mod *ModuleValue) {
	ip.modules[mod.Name] = mod
}

// AddSearchDir appends a directory consulted for `imp` resolution after
// BaseDir; NewRuntime uses this to wire in BOA_PATH roots.
func (ip *Interpreter) AddSearchDir(dir string) {
	ip.searchDirs = append(ip.searchDirs, dir)
}

// Run executes prog's statements against the global scope. A top-level
// `ret` is a runtime error.
func (ip *Interpreter) Run(prog *Program) (Value, error) {
	result, fl, err := ip.execStatements(prog.Statements, ip.Global)
	if err != nil {
		return None, err
	}
	if fl.kind == flowReturn {
		return None, newRuntimeError(prog.Pos, "'ret' outside a function")
	}
	return result, nil
}

func (ip *Interpreter) execStatements(stmts []Stmt, env *Environment) (Value, flow, error) {
	result := None
	for _, s := range stmts {
		v, fl, err := ip.execStmt(s, env)
		if err != nil {
			return None, flow{}, err
		}
		if fl.kind != flowNormal {
			return v, fl, nil
		}
		result = v
	}
	return result, flow{kind: flowNormal}, nil
}

func (ip *Interpreter) execBlock(b *Block, env *Environment) (Value, flow, error) {
	return ip.execStatements(b.Statements, env)
}

func (ip *Interpreter) execStmt(s Stmt, env *Environment) (Value, flow, error) {
	switch n := s.(type) {
	case *ExpressionStmt:
		v, err := ip.evalExpr(n.Expr, env)
		if err != nil {
			return None, flow{}, err
		}
		return v, flow{kind: flowNormal}, nil
	case *Assignment:
		v, err := ip.execAssignment(n, env)
		if err != nil {
			return None, flow{}, err
		}
		return v, flow{kind: flowNormal}, nil
	case *PassStmt:
		return None, flow{kind: flowNormal}, nil
	case *ReturnStmt:
		v := None
		if n.Value != nil {
			var err error
			v, err = ip.evalExpr(n.Value, env)
			if err != nil {
				return None, flow{}, err
			}
		}
		return v, flow{kind: flowReturn, value: v}, nil
	case *FnDef:
		fn := &FuncValue{Name: n.Name, Params: n.Params, Body: n.Body, Closure: env}
		env.Define(n.Name, FuncVal(fn))
		return None, flow{kind: flowNormal}, nil
	case *ClassDef:
		// Parsed but not evaluated meaningfully; ignored at run time.
		return None, flow{kind: flowNormal}, nil
	case *IfStmt:
		return ip.execIf(n, env)
	case *ForStmt:
		return ip.execFor(n, env)
	case *WhileStmt:
		return ip.execWhile(n, env)
	case *ImportStmt:
		if err := ip.execImport(n, env); err != nil {
			return None, flow{}, err
		}
		return None, flow{kind: flowNormal}, nil
	case *TryStmt:
		return ip.execTry(n, env)
	default:
		return None, flow{}, newRuntimeError(s.Position(), "unknown statement node %T", s)
	}
}

func (ip *Interpreter) execIf(n *IfStmt, env *Environment) (Value, flow, error) {
	cond, err := ip.evalExpr(n.Cond, env)
	if err != nil {
		return None, flow{}, err
	}
	if Truthy(cond) {
		return ip.execBlock(n.Body, env)
	}
	for _, clause := range n.Elifs {
		c, err := ip.evalExpr(clause.Cond, env)
		if err != nil {
			return None, flow{}, err
		}
		if Truthy(c) {
			return ip.execBlock(clause.Body, env)
		}
	}
	if n.Else != nil {
		return ip.execBlock(n.Else, env)
	}
	return None, flow{kind: flowNormal}, nil
}

func (ip *Interpreter) execFor(n *ForStmt, env *Environment) (Value, flow, error) {
	iterable, err := ip.evalExpr(n.Iterable, env)
	if err != nil {
		return None, flow{}, err
	}
	if iterable.Kind != KindList {
		return None, flow{}, newRuntimeError(n.Position(), "'for' requires a list, got %s", TypeName(iterable))
	}
	result := None
	for _, elem := range iterable.List.Elements {
		env.AssignOrDefine(n.Var, elem)
		v, fl, err := ip.execBlock(n.Body, env)
		if err != nil {
			return None, flow{}, err
		}
		if fl.kind != flowNormal {
			return v, fl, nil
		}
		result = v
	}
	return result, flow{kind: flowNormal}, nil
}

func (ip *Interpreter) execWhile(n *WhileStmt, env *Environment) (Value, flow, error) {
	result := None
	for {
		cond, err := ip.evalExpr(n.Cond, env)
		if err != nil {
			return None, flow{}, err
		}
		if !Truthy(cond) {
			break
		}
		v, fl, err := ip.execBlock(n.Body, env)
		if err != nil {
			return None, flow{}, err
		}
		if fl.kind != flowNormal {
			return v, fl, nil
		}
		result = v
	}
	return result, flow{kind: flowNormal}, nil
}

func (ip *Interpreter) execTry(n *TryStmt, env *Environment) (Value, flow, error) {
	runFinally := func() error {
		if n.FinallyBody == nil {
			return nil
		}
		_, _, ferr := ip.execBlock(n.FinallyBody, env)
		return ferr
	}

	result, fl, err := ip.execBlock(n.TryBody, env)
	if err != nil {
		if n.HasExcept {
			if n.ExceptVar != "" {
				env.Define(n.ExceptVar, StringVal(err.Error()))
			}
			r2, fl2, err2 := ip.execBlock(n.ExceptBody, env)
			if ferr := runFinally(); ferr != nil {
				return None, flow{}, ferr
			}
			if err2 != nil {
				return None, flow{}, err2
			}
			return r2, fl2, nil
		}
		if ferr := runFinally(); ferr != nil {
			return None, flow{}, ferr
		}
		return None, flow{}, err
	}

	if ferr := runFinally(); ferr != nil {
		return None, flow{}, ferr
	}
	return result, fl, nil
}
