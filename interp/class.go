/*
File   : plox/interp/class.go

Class and Instance, the two runtime values a `class` declaration
produces and constructs: Class is the callable that builds instances,
Instance is the object each call to it produces.
*/
package interp

import "fmt"

// Class is a Lox class value: its name, optional superclass, and its
// own methods keyed by name. Method lookup on an instance walks this
// class then its superclass chain via FindMethod, so a method defined
// on a subclass always shadows one of the same name further up the
// chain.
//
// A Class is itself a Callable — calling it is how an instance gets
// constructed (see Call) — which is also why it's the target of the
// interpreter's identity equality for classes: two Class values are
// equal only if they're the same *Class (one execution of a class
// declaration), never by name.
//
// Fields:
//   - Name: the class's declared name, used for error messages and
//     String's output.
//   - Superclass: the class named after `<` in the declaration, or nil.
//   - Methods: this class's own methods, not including inherited ones.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFunction
}

func (*Class) Type() string     { return "class" }
func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then its superclass chain, stopping
// at the first match — the method resolution order a single-inheritance
// language needs no more machinery than this for.
//
// Parameters:
//   - name: the method name to search for.
//
// Returns:
//   - *UserFunction: the matching method, unbound (see UserFunction.Bind).
//   - bool: whether any class in the chain declares name.
func (c *Class) FindMethod(name string) (*UserFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or 0 if the class declares none —
// calling a class with no initializer always takes zero arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class has an `init`
// method, invokes it bound to that instance with the given arguments.
// The instance is returned regardless of what (if anything) `init`
// itself would otherwise return, since UserFunction.Call already forces
// an initializer to yield `this`.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime Lox object: a reference to the class it was
// constructed from and a mutable field map. Unlike Class's Methods,
// Fields starts empty and grows as `set` expressions assign to
// properties that didn't exist yet — Lox instances have no declared
// field list to validate against.
//
// Fields:
//   - Class: the class this instance was constructed from.
//   - Fields: this instance's own properties, set via `instance.x = v`.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (*Instance) Type() string     { return "instance" }
func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get implements property lookup order: instance fields first, then
// the class method chain, bound to this instance so the method's body
// can refer to `this`. A field shadows a method of the same name, which
// is why fields are checked first.
//
// Parameters:
//   - name: the property name from a `get` expression.
//
// Returns:
//   - Value: the field value, or a bound method.
//   - bool: whether name resolved to either a field or a method.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes a field, creating it if it doesn't already exist.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
