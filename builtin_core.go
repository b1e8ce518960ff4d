// builtin_core.go registers Boa's closed global built-in set: len, str, int,
// float, type, range, append, print. Each is a thin NativeFunc wired into
// the global scope by RegisterCoreBuiltins.
package boa

import (
	"fmt"
	"strconv"
)

// RegisterCoreBuiltins seeds ip's global scope with Boa's core built-ins.
func RegisterCoreBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("len", builtinLen)
	ip.RegisterBuiltin("str", builtinStr)
	ip.RegisterBuiltin("int", builtinInt)
	ip.RegisterBuiltin("float", builtinFloat)
	ip.RegisterBuiltin("type", builtinType)
	ip.RegisterBuiltin("range", builtinRange)
	ip.RegisterBuiltin("append", builtinAppend)
	ip.RegisterBuiltin("print", builtinPrint)
}

func arityError(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

func builtinLen(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return None, arityError("len", 1, len(args))
	}
	switch args[0].Kind {
	case KindString:
		return IntVal(int64(len(args[0].Str))), nil
	case KindList:
		return IntVal(int64(len(args[0].List.Elements))), nil
	case KindDict:
		return IntVal(int64(len(args[0].Dict.Entries))), nil
	default:
		return None, fmt.Errorf("len() is not defined for %s", TypeName(args[0]))
	}
}

func builtinStr(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return None, arityError("str", 1, len(args))
	}
	return StringVal(FormatValue(args[0])), nil
}

func builtinInt(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return None, arityError("int", 1, len(args))
	}
	switch a := args[0]; a.Kind {
	case KindInt:
		return a, nil
	case KindFloat:
		return IntVal(int64(a.Flt)), nil
	case KindBool:
		if a.Bool {
			return IntVal(1), nil
		}
		return IntVal(0), nil
	case KindString:
		i, err := strconv.ParseInt(a.Str, 10, 64)
		if err != nil {
			return None, fmt.Errorf("cannot convert %q to int", a.Str)
		}
		return IntVal(i), nil
	default:
		return None, fmt.Errorf("cannot convert %s to int", TypeName(a))
	}
}

func builtinFloat(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return None, arityError("float", 1, len(args))
	}
	switch a := args[0]; a.Kind {
	case KindFloat:
		return a, nil
	case KindInt:
		return FloatVal(float64(a.Int)), nil
	case KindString:
		f, err := strconv.ParseFloat(a.Str, 64)
		if err != nil {
			return None, fmt.Errorf("cannot convert %q to float", a.Str)
		}
		return FloatVal(f), nil
	default:
		return None, fmt.Errorf("cannot convert %s to float", TypeName(a))
	}
}

func builtinType(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return None, arityError("type", 1, len(args))
	}
	return StringVal(TypeName(args[0])), nil
}

func builtinRange(_ *Interpreter, args []Value) (Value, error) {
	var start, stop, step int64
	switch len(args) {
	case 1:
		start, step = 0, 1
		if args[0].Kind != KindInt {
			return None, fmt.Errorf("range() arguments must be int")
		}
		stop = args[0].Int
	case 2:
		if args[0].Kind != KindInt || args[1].Kind != KindInt {
			return None, fmt.Errorf("range() arguments must be int")
		}
		start, stop, step = args[0].Int, args[1].Int, 1
	case 3:
		if args[0].Kind != KindInt || args[1].Kind != KindInt || args[2].Kind != KindInt {
			return None, fmt.Errorf("range() arguments must be int")
		}
		start, stop, step = args[0].Int, args[1].Int, args[2].Int
	default:
		return None, fmt.Errorf("range() expects 1 to 3 arguments, got %d", len(args))
	}
	if step == 0 {
		return None, fmt.Errorf("range() step must be non-zero")
	}

	var elems []Value
	if step > 0 {
		for i := start; i < stop; i += step {
			elems = append(elems, IntVal(i))
		}
	} else {
		for i := start; i > stop; i += step {
			elems = append(elems, IntVal(i))
		}
	}
	return ListVal(elems), nil
}

func builtinAppend(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 2 {
		return None, arityError("append", 2, len(args))
	}
	if args[0].Kind != KindList {
		return None, fmt.Errorf("append() requires a list, got %s", TypeName(args[0]))
	}
	args[0].List.Elements = append(args[0].List.Elements, args[1])
	return None, nil
}

func builtinPrint(interp *Interpreter, args []Value) (Value, error) {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += FormatValue(a)
	}
	fmt.Fprintln(interp.Out, out)
	return None, nil
}
