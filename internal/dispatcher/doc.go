// Package dispatcher routes actions to handlers and coordinates execution.
//
// Handlers are registered by exact action name. Dispatch runs the
// pre-dispatch hooks, the handler, then the post-dispatch hooks, all on
// the caller's goroutine. A handler panic is converted into an error
// result when RecoverFromPanic is set.
//
// Hooks see every action. The editor uses them to take undo checkpoints
// around edits:
//
//	d.RegisterPreHook(dispatcher.PreDispatchFunc(func(a *input.Action) bool {
//	    if keymap.IsEdit(a.Name) {
//	        s.checkpoint()
//	    }
//	    return true
//	}))
package dispatcher
