// value.go defines Boa's tagged value domain and the chained environment
// it is stored in. The union carries a kind tag plus the payload for that
// kind and nothing else — there is no static type checker, so values need
// no type annotation slot.
package boa

import "fmt"

// ValueKind tags a Value's case.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindDict
	KindFunction
	KindBuiltin
	KindModule
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// Value is Boa's single runtime value representation. List, Dict, Function,
// and Module are reference kinds: two Values sharing one of these point at
// the same backing struct, so mutation through one alias is observable
// through the other.
type Value struct {
	Kind ValueKind
	Bool bool
	Int  int64
	Flt  float64
	Str  string
	List *ListValue
	Dict *DictValue
	Fn   *FuncValue
	Bi   *Builtin
	Mod  *ModuleValue
}

// None is the singleton absence-of-value.
var None = Value{Kind: KindNone}

func BoolVal(b bool) Value  { return Value{Kind: KindBool, Bool: b} }
func IntVal(i int64) Value  { return Value{Kind: KindInt, Int: i} }
func FloatVal(f float64) Value { return Value{Kind: KindFloat, Flt: f} }
func StringVal(s string) Value { return Value{Kind: KindString, Str: s} }

func ListVal(elems []Value) Value {
	return Value{Kind: KindList, List: &ListValue{Elements: elems}}
}

func DictValOf(d *DictValue) Value { return Value{Kind: KindDict, Dict: d} }

func FuncVal(f *FuncValue) Value { return Value{Kind: KindFunction, Fn: f} }

func BuiltinVal(b *Builtin) Value { return Value{Kind: KindBuiltin, Bi: b} }

func ModuleVal(m *ModuleValue) Value { return Value{Kind: KindModule, Mod: m} }

// ListValue is the shared backing store for a list value.
type ListValue struct {
	Elements []Value
}

// DictPairEntry is one (key, value) slot in an insertion-ordered dict.
type DictPairEntry struct {
	Key   Value
	Value Value
}

// DictValue is an insertion-ordered, linearly-searched association list.
// There is no hashing requirement: keys compare by value equality, which is
// what lets an Int key and an equal Float key collide.
type DictValue struct {
	Entries []DictPairEntry
}

func NewDict() *DictValue { return &DictValue{} }

func (d *DictValue) Get(key Value) (Value, bool) {
	for _, e := range d.Entries {
		if valuesEqual(e.Key, key) {
			return e.Value, true
		}
	}
	return None, false
}

func (d *DictValue) Set(key, value Value) {
	for i, e := range d.Entries {
		if valuesEqual(e.Key, key) {
			d.Entries[i].Value = value
			return
		}
	}
	d.Entries = append(d.Entries, DictPairEntry{Key: key, Value: value})
}

// FuncValue is a user-defined function: a non-owning reference to its body
// plus a shared reference to the scope it closed over.
type FuncValue struct {
	Name    string
	Params  []string
	Body    *Block
	Closure *Environment
}

// NativeFunc is the Go implementation behind a Builtin.
type NativeFunc func(interp *Interpreter, args []Value) (Value, error)

// Builtin wraps a host-provided callable.
type Builtin struct {
	Name string
	Fn   NativeFunc
}

// ModuleValue is a named bag of bindings — either host-supplied (io, fs) or
// produced by snapshotting a .boa file's top-level scope after `imp`.
type ModuleValue struct {
	Name    string
	Members map[string]Value
	// Order records member names in insertion order (module-file snapshots
	// insert them sorted by name).
	Order []string
}

func NewModule(name string) *ModuleValue {
	return &ModuleValue{Name: name, Members: map[string]Value{}}
}

func (m *ModuleValue) Get(name string) (Value, bool) {
	v, ok := m.Members[name]
	return v, ok
}

func (m *ModuleValue) Set(name string, v Value) {
	if _, exists := m.Members[name]; !exists {
		m.Order = append(m.Order, name)
	}
	m.Members[name] = v
}

// Truthy implements Boa's truthiness predicate.
func Truthy(v Value) bool {
	switch v.Kind {
	case KindNone:
		return false
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != 0
	case KindFloat:
		return v.Flt != 0.0
	case KindString:
		return len(v.Str) > 0
	case KindList:
		return len(v.List.Elements) > 0
	case KindDict:
		return len(v.Dict.Entries) > 0
	default:
		return true
	}
}

func valuesEqual(a, b Value) bool {
	switch {
	case a.Kind == KindInt && b.Kind == KindInt:
		return a.Int == b.Int
	case a.Kind == KindFloat && b.Kind == KindFloat:
		return a.Flt == b.Flt
	case a.Kind == KindInt && b.Kind == KindFloat:
		return float64(a.Int) == b.Flt
	case a.Kind == KindFloat && b.Kind == KindInt:
		return a.Flt == float64(b.Int)
	case a.Kind != b.Kind:
		return false
	}
	switch a.Kind {
	case KindNone:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindString:
		return a.Str == b.Str
	default:
		return false
	}
}

// FormatValue renders v the way print() and the REPL display values;
// strings are unquoted at top level but quoted inside lists/dicts.
func FormatValue(v Value) string {
	return formatValue(v, false)
}

func formatValue(v Value, quoted bool) string {
	switch v.Kind {
	case KindNone:
		return "none"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%g", v.Flt)
	case KindString:
		if quoted {
			return fmt.Sprintf("%q", v.Str)
		}
		return v.Str
	case KindList:
		out := "["
		for i, e := range v.List.Elements {
			if i > 0 {
				out += ", "
			}
			out += formatValue(e, true)
		}
		return out + "]"
	case KindDict:
		out := "{"
		for i, e := range v.Dict.Entries {
			if i > 0 {
				out += ", "
			}
			out += formatValue(e.Key, true) + ": " + formatValue(e.Value, true)
		}
		return out + "}"
	case KindFunction:
		return fmt.Sprintf("<function %s>", v.Fn.Name)
	case KindBuiltin:
		return fmt.Sprintf("<builtin %s>", v.Bi.Name)
	case KindModule:
		return fmt.Sprintf("<module %s>", v.Mod.Name)
	default:
		return "<?>"
	}
}

// TypeName reports the name `type()` returns for v.
func TypeName(v Value) string { return v.Kind.String() }

// Environment is a chained scope: a local table plus an optional parent.
type Environment struct {
	vars   map[string]Value
	parent *Environment
}

// NewEnvironment creates a fresh frame whose parent is the given scope (nil
// for the global scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: map[string]Value{}, parent: parent}
}

// Get walks the parent chain looking for name.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return None, false
}

// Define binds name in this frame only, shadowing any outer binding.
func (e *Environment) Define(name string, v Value) {
	e.vars[name] = v
}

// AssignOrDefine implements Boa's deliberate scope rule for `=` on a bare
// identifier: the nearest existing binding anywhere in the chain is
// updated, or a new local binding is defined if the name is not found
// anywhere.
func (e *Environment) AssignOrDefine(name string, v Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = v
			return
		}
	}
	e.vars[name] = v
}

// SetExisting updates name in whichever frame already holds it; it reports
// whether such a frame was found. Compound assignment (+=, etc.) uses this,
// since it requires the name to already be defined.
func (e *Environment) SetExisting(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = v
			return true
		}
	}
	return false
}
