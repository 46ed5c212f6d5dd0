// Package keymap maps logical keys to action names per mode.
//
// A Keymap is a named list of Bindings for one mode, or for every mode when
// its Mode is empty. The Registry resolves a key event by checking the
// current mode's keymap first and the global keymap second, so a mode can
// shadow a global binding. Keys with no binding fall through to the mode
// itself (see package mode).
//
// Binding keys use the spec form of package key: "i", ":", "Enter",
// "PageDown", "Ctrl+C".
package keymap
