/*
File   : plox/interp/native.go

The only standard-library surface Lox exposes: a single clock()
primitive, seeded into the global environment before any user code
runs.
*/
package interp

import "time"

func defineNatives(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		Name:    "clock",
		NumArgs: 0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
