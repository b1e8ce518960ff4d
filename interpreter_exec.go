// interpreter_exec.go covers expression evaluation, assignment-target
// resolution, and function application — the call engine for the
// tree-walking evaluator in interpreter.go.
package boa

func (ip *Interpreter) evalExpr(e Expr, env *Environment) (Value, error) {
	switch n := e.(type) {
	case *NumberLit:
		if n.IsInt {
			return IntVal(n.IntVal), nil
		}
		return FloatVal(n.Value), nil
	case *StringLit:
		return StringVal(n.Value), nil
	case *BoolLit:
		return BoolVal(n.Value), nil
	case *NoneLit:
		return None, nil
	case *Identifier:
		v, ok := env.Get(n.Name)
		if !ok {
			return None, newRuntimeError(n.Position(), "undefined variable '%s'", n.Name)
		}
		return v, nil
	case *ListLiteral:
		elems := make([]Value, 0, len(n.Elements))
		for _, el := range n.Elements {
			v, err := ip.evalExpr(el, env)
			if err != nil {
				return None, err
			}
			elems = append(elems, v)
		}
		return ListVal(elems), nil
	case *DictLiteral:
		d := NewDict()
		for _, pair := range n.Pairs {
			k, err := ip.evalExpr(pair.Key, env)
			if err != nil {
				return None, err
			}
			v, err := ip.evalExpr(pair.Value, env)
			if err != nil {
				return None, err
			}
			d.Set(k, v)
		}
		return DictValOf(d), nil
	case *UnaryOp:
		return ip.evalUnary(n, env)
	case *BinaryOp:
		return ip.evalBinary(n, env)
	case *IndexExpr:
		return ip.evalIndex(n, env)
	case *MemberAccess:
		return ip.evalMember(n, env)
	case *FunctionCall:
		return ip.evalCall(n, env)
	default:
		return None, newRuntimeError(e.Position(), "unknown expression node %T", e)
	}
}

func (ip *Interpreter) evalIndex(n *IndexExpr, env *Environment) (Value, error) {
	obj, err := ip.evalExpr(n.Object, env)
	if err != nil {
		return None, err
	}
	idx, err := ip.evalExpr(n.Index, env)
	if err != nil {
		return None, err
	}
	return ip.indexValue(obj, idx, n.Position())
}

func (ip *Interpreter) indexValue(obj, idx Value, pos Pos) (Value, error) {
	switch obj.Kind {
	case KindList:
		i, err := requireIndexInt(idx, pos)
		if err != nil {
			return None, err
		}
		n := len(obj.List.Elements)
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return None, newRuntimeError(pos, "list index out of range")
		}
		return obj.List.Elements[i], nil
	case KindString:
		i, err := requireIndexInt(idx, pos)
		if err != nil {
			return None, err
		}
		n := len(obj.Str)
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return None, newRuntimeError(pos, "string index out of range")
		}
		return StringVal(obj.Str[i : i+1]), nil
	case KindDict:
		v, ok := obj.Dict.Get(idx)
		if !ok {
			return None, newRuntimeError(pos, "missing dict key %s", formatValue(idx, true))
		}
		return v, nil
	default:
		return None, newRuntimeError(pos, "cannot index a %s", TypeName(obj))
	}
}

func requireIndexInt(idx Value, pos Pos) (int, error) {
	if idx.Kind != KindInt {
		return 0, newRuntimeError(pos, "index must be an int, got %s", TypeName(idx))
	}
	return int(idx.Int), nil
}

func (ip *Interpreter) evalMember(n *MemberAccess, env *Environment) (Value, error) {
	obj, err := ip.evalExpr(n.Object, env)
	if err != nil {
		return None, err
	}
	return ip.memberValue(obj, n.Name, n.Position())
}

func (ip *Interpreter) memberValue(obj Value, name string, pos Pos) (Value, error) {
	switch obj.Kind {
	case KindModule:
		v, ok := obj.Mod.Get(name)
		if !ok {
			return None, newRuntimeError(pos, "module %s has no member %s", obj.Mod.Name, name)
		}
		return v, nil
	case KindList:
		switch name {
		case "length":
			return IntVal(int64(len(obj.List.Elements))), nil
		case "append":
			list := obj.List
			return BuiltinVal(&Builtin{Name: "append", Fn: func(_ *Interpreter, args []Value) (Value, error) {
				if len(args) != 1 {
					return None, newRuntimeError(pos, "append expects exactly 1 argument, got %d", len(args))
				}
				list.Elements = append(list.Elements, args[0])
				return None, nil
			}}), nil
		default:
			return None, newRuntimeError(pos, "list has no member %s", name)
		}
	case KindString:
		switch name {
		case "length":
			return IntVal(int64(len(obj.Str))), nil
		case "upper":
			s := obj.Str
			return BuiltinVal(&Builtin{Name: "upper", Fn: func(_ *Interpreter, args []Value) (Value, error) {
				if len(args) != 0 {
					return None, newRuntimeError(pos, "upper expects no arguments, got %d", len(args))
				}
				return StringVal(asciiUpper(s)), nil
			}}), nil
		case "lower":
			s := obj.Str
			return BuiltinVal(&Builtin{Name: "lower", Fn: func(_ *Interpreter, args []Value) (Value, error) {
				if len(args) != 0 {
					return None, newRuntimeError(pos, "lower expects no arguments, got %d", len(args))
				}
				return StringVal(asciiLower(s)), nil
			}}), nil
		default:
			return None, newRuntimeError(pos, "string has no member %s", name)
		}
	default:
		return None, newRuntimeError(pos, "%s has no member %s", TypeName(obj), name)
	}
}

func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func (ip *Interpreter) evalCall(n *FunctionCall, env *Environment) (Value, error) {
	callee, err := ip.evalExpr(n.Callee, env)
	if err != nil {
		return None, err
	}
	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := ip.evalExpr(a, env)
		if err != nil {
			return None, err
		}
		args = append(args, v)
	}
	return ip.callValue(callee, args, n.Position())
}

func (ip *Interpreter) callValue(callee Value, args []Value, pos Pos) (Value, error) {
	switch callee.Kind {
	case KindBuiltin:
		v, err := callee.Bi.Fn(ip, args)
		if err != nil {
			return None, newRuntimeError(pos, "%s", err.Error())
		}
		return v, nil
	case KindFunction:
		fn := callee.Fn
		if len(args) != len(fn.Params) {
			return None, newRuntimeError(pos, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
		}
		frame := NewEnvironment(fn.Closure)
		for i, p := range fn.Params {
			frame.Define(p, args[i])
		}
		result, fl, err := ip.execBlock(fn.Body, frame)
		if err != nil {
			return None, err
		}
		if fl.kind == flowReturn {
			return fl.value, nil
		}
		return result, nil
	default:
		return None, newRuntimeError(pos, "%s is not callable", TypeName(callee))
	}
}

// ---- assignment ----

func (ip *Interpreter) execAssignment(n *Assignment, env *Environment) (Value, error) {
	if n.Op == EQ {
		value, err := ip.evalExpr(n.Value, env)
		if err != nil {
			return None, err
		}
		return value, ip.assignTo(n.Target, value, env)
	}

	current, err := ip.evalExpr(n.Target, env)
	if err != nil {
		return None, err
	}
	rhs, err := ip.evalExpr(n.Value, env)
	if err != nil {
		return None, err
	}
	var op TokenType
	switch n.Op {
	case PLUSEQ:
		op = PLUS
	case MINUSEQ:
		op = MINUS
	case STAREQ:
		op = STAR
	case SLASHEQ:
		op = SLASH
	default:
		return None, newRuntimeError(n.Position(), "unknown assignment operator")
	}
	value, err := applyBinaryOp(op, current, rhs, n.Position())
	if err != nil {
		return None, err
	}
	return value, ip.assignCompoundTo(n.Target, value, env)
}

// assignTo implements `=` targets: Identifier follows the update-nearest-or-
// define-locally rule; IndexExpr/MemberAccess targets mutate in place.
func (ip *Interpreter) assignTo(target Expr, value Value, env *Environment) error {
	switch t := target.(type) {
	case *Identifier:
		env.AssignOrDefine(t.Name, value)
		return nil
	case *IndexExpr:
		return ip.assignIndex(t, value, env)
	case *MemberAccess:
		return ip.assignMember(t, value, env)
	default:
		return newRuntimeError(target.Position(), "invalid assignment target")
	}
}

// assignCompoundTo implements `+=`-style targets: the name must already
// exist, so Identifier uses SetExisting rather than AssignOrDefine.
func (ip *Interpreter) assignCompoundTo(target Expr, value Value, env *Environment) error {
	switch t := target.(type) {
	case *Identifier:
		if !env.SetExisting(t.Name, value) {
			return newRuntimeError(target.Position(), "undefined variable '%s'", t.Name)
		}
		return nil
	case *IndexExpr:
		return ip.assignIndex(t, value, env)
	case *MemberAccess:
		return ip.assignMember(t, value, env)
	default:
		return newRuntimeError(target.Position(), "invalid assignment target")
	}
}

func (ip *Interpreter) assignIndex(t *IndexExpr, value Value, env *Environment) error {
	obj, err := ip.evalExpr(t.Object, env)
	if err != nil {
		return err
	}
	idx, err := ip.evalExpr(t.Index, env)
	if err != nil {
		return err
	}
	switch obj.Kind {
	case KindList:
		i, err := requireIndexInt(idx, t.Position())
		if err != nil {
			return err
		}
		n := len(obj.List.Elements)
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return newRuntimeError(t.Position(), "list index out of range")
		}
		obj.List.Elements[i] = value
		return nil
	case KindDict:
		obj.Dict.Set(idx, value)
		return nil
	default:
		return newRuntimeError(t.Position(), "cannot assign into a %s", TypeName(obj))
	}
}

func (ip *Interpreter) assignMember(t *MemberAccess, value Value, env *Environment) error {
	obj, err := ip.evalExpr(t.Object, env)
	if err != nil {
		return err
	}
	if obj.Kind != KindModule {
		return newRuntimeError(t.Position(), "cannot assign a member on a %s", TypeName(obj))
	}
	obj.Mod.Set(t.Name, value)
	return nil
}
