// Package mode provides the two-mode editing model of the line editor.
//
//   - Normal mode: single keys run commands; typing text is refused with
//     a hint.
//   - Insert mode: printable keys insert text.
//
// The Manager owns the current mode and notifies callbacks when it
// changes. Keys with an explicit keymap binding never reach a Mode; keys
// without one are passed to Mode.HandleUnmapped, which decides whether
// they insert text, trigger an action, or are dropped.
//
// # Mode Lifecycle
//
// When switching modes:
//  1. Current mode's Exit() is called
//  2. New mode's Enter() is called
//  3. Mode change callbacks are notified
package mode
