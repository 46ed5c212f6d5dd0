package dispatcher

import (
	"github.com/dshills/linedit/internal/dispatcher/handler"
	"github.com/dshills/linedit/internal/input"
)

// PreDispatchHook is called before an action is dispatched.
// Returning false cancels the dispatch.
type PreDispatchHook interface {
	// PreDispatch is called before dispatch.
	// It may modify the action.
	PreDispatch(action *input.Action) bool
}

// PostDispatchHook is called after an action is dispatched.
type PostDispatchHook interface {
	// PostDispatch is called after dispatch completes.
	// It may inspect or modify the result.
	PostDispatch(action *input.Action, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *input.Action) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action) bool {
	return f(action)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action *input.Action, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action *input.Action, result *handler.Result) {
	f(action, result)
}

// LoggingHook reports every dispatch through LogFunc.
type LoggingHook struct {
	// LogFunc is called with log messages.
	LogFunc func(format string, args ...interface{})
}

// PreDispatch implements PreDispatchHook.
func (h *LoggingHook) PreDispatch(action *input.Action) bool {
	if h.LogFunc != nil {
		h.LogFunc("dispatch: %s (source=%s)", action.Name, action.Source)
	}
	return true
}

// PostDispatch implements PostDispatchHook.
func (h *LoggingHook) PostDispatch(action *input.Action, result *handler.Result) {
	if h.LogFunc == nil {
		return
	}
	if result.Error != nil {
		h.LogFunc("dispatch: %s -> %s: %v", action.Name, result.Status, result.Error)
		return
	}
	h.LogFunc("dispatch: %s -> %s", action.Name, result.Status)
}
