// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/linedit/internal/input"
)

// Handler processes a specific action.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action) Result
}

// HandlerFunc is a function adapter for Handler interface.
type HandlerFunc func(action input.Action) Result

// Handle implements Handler.Handle.
func (f HandlerFunc) Handle(action input.Action) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(action)
}
