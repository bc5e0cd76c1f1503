package core

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a recovered panic value and the stack at the point of recovery
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panicked error value to errors.Is / errors.As
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RunSafe calls fn and converts a panic into a *PanicError
func RunSafe(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// Go runs fn in a new goroutine; a panic is handed to onCrash instead of killing the process
// Use this instead of the 'go' keyword for goroutines that own simulation state
func Go(fn func(), onCrash func(error)) {
	go func() {
		err := RunSafe(func() error {
			fn()
			return nil
		})
		if err != nil && onCrash != nil {
			onCrash(err)
		}
	}()
}
