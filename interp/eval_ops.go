/*
File   : plox/interp/eval_ops.go

Operator and access-expression evaluation, split out of eval.go to
keep the dispatch switch short — one function per kind of expression
(arithmetic, comparison, variable access, call, property access,
super).
*/
package interp

import (
	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/token"
)

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.BANG:
		return Bool(!IsTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	// Short-circuit: the expression's value is the last operand actually
	// evaluated, not a coerced boolean — `"a" or "b"` yields "a", not true.
	if e.Operator.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.MINUS:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case token.GREATER:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(ln > rn), nil

	case token.GREATER_EQUAL:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(ln >= rn), nil

	case token.LESS:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(ln < rn), nil

	case token.LESS_EQUAL:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return Bool(ln <= rn), nil

	case token.EQUAL_EQUAL:
		return Bool(ValuesEqual(left, right)), nil

	case token.BANG_EQUAL:
		return Bool(!ValuesEqual(left, right)), nil

	default:
		panic("interp: unhandled binary operator")
	}
}

// numberOperands requires both operands to be Number, reporting
// "Operands must be numbers." otherwise.
func (in *Interpreter) numberOperands(op token.Token, left, right Value) (Number, Number, error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

// lookupVariable reads a Variable/This reference using the resolver's
// depth map when present, else falls back to the global environment.
func (in *Interpreter) lookupVariable(name string, id int, tok token.Token) (Value, error) {
	if depth, ok := in.depths[id]; ok {
		return in.env.GetAt(depth, name), nil
	}
	if v, ok := in.Globals.Get(name); ok {
		return v, nil
	}
	return nil, newRuntimeError(tok, "Undefined variable '%s'.", name)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}

	if depth, ok := in.depths[e.ID]; ok {
		in.env.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if in.Globals.Assign(e.Name.Lexeme, value) {
		return value, nil
	}
	return nil, newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper implements super.method: `super` lives one environment
// frame outside `this`, both reached through the resolver's depth map.
func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	depth := in.depths[e.ID]
	superVal := in.env.GetAt(depth, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		panic("interp: 'super' bound to non-class value")
	}

	instanceVal := in.env.GetAt(depth-1, "this")
	instance, ok := instanceVal.(*Instance)
	if !ok {
		panic("interp: 'this' bound to non-instance value")
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
