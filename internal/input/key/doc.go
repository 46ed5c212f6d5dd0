// Package key provides the logical key events the editor reacts to.
//
// Terminal events arrive from the backend in a device-oriented shape. Decode
// folds them into an Event whose Kind says what happened (a key press, a left
// click, a resize, or the end of input) so the dispatcher can resolve it
// against the keymap without knowing about the terminal.
//
// Events have a compact spec form used by keymaps and tests:
//
//   - Printable runes are themselves: "i", "N", ":"
//   - Special keys use their names: "Enter", "Escape", "PageDown"
//   - Ctrl-C is written "Ctrl+C"
package key
