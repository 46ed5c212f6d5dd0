package app

import (
	"strings"

	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/input/keymap"
)

// commands maps whole command lines to actions.
var commands = map[string]string{
	"u":         keymap.ActionUndo,
	"r":         keymap.ActionRedo,
	"help":      keymap.ActionHelp,
	"h":         keymap.ActionHelp,
	"w":         keymap.ActionSave,
	"wq":        keymap.ActionSaveAndExit,
	"q":         keymap.ActionQuitIfSaved,
	"q!":        keymap.ActionForceQuit,
	"ls":        keymap.ActionHistoryList,
	"clearhist": keymap.ActionHistoryClear,
}

// ParseCommand maps a command line to the action it names. ok is false for
// a blank line. Lines that name no command give ActionUnknown carrying the
// trimmed line.
//
//	/<pattern>   search for pattern
//	e <path>     open path
func ParseCommand(line string) (input.Action, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return input.Action{}, false
	}

	action := func(name, text string) input.Action {
		return input.NewAction(name).WithText(text).WithSource(input.SourceCommand)
	}

	if name, ok := commands[line]; ok {
		return action(name, ""), true
	}
	if pattern, ok := strings.CutPrefix(line, "/"); ok {
		return action(keymap.ActionSearch, pattern), true
	}
	if path, ok := strings.CutPrefix(line, "e "); ok {
		if path = strings.TrimSpace(path); path != "" {
			return action(keymap.ActionOpen, path), true
		}
	}
	return action(keymap.ActionUnknown, line), true
}
