// Package input turns logical key events into editor actions.
//
// The Handler owns the mode manager and the keymap registry. For each
// event it:
//
//  1. Maps clicks, resizes and end-of-input directly to actions
//  2. Looks the key up in the current mode's keymap, then the global one
//  3. Falls back to the current mode's HandleUnmapped for unbound keys
//
// The resulting Action is handed to the dispatcher, which runs it.
//
// # Usage
//
//	h := input.NewHandler(input.DefaultConfig())
//	if action, ok := h.Resolve(key.Decode(ev)); ok {
//	    d.Dispatch(action)
//	}
package input
