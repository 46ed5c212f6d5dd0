package keymap

import "github.com/dshills/linedit/internal/input/mode"

// Action names bound by the default keymaps.
const (
	ActionMoveLeft     = "cursor.moveLeft"
	ActionMoveRight    = "cursor.moveRight"
	ActionMoveUp       = "cursor.moveUp"
	ActionMoveDown     = "cursor.moveDown"
	ActionPageUp       = "cursor.pageUp"
	ActionPageDown     = "cursor.pageDown"
	ActionLineStart    = "cursor.lineStart"
	ActionLineEnd      = "cursor.lineEnd"
	ActionClick        = "cursor.click"
	ActionInsertText   = "editor.insertText"
	ActionInsertTab    = "editor.insertTab"
	ActionNewline      = "editor.newline"
	ActionBackspace    = "editor.backspace"
	ActionDelete       = "editor.deleteForward"
	ActionUndo         = "editor.undo"
	ActionRedo         = "editor.redo"
	ActionModeInsert   = "mode.insert"
	ActionModeNormal   = "mode.normal"
	ActionInsertHint   = mode.ActionInsertHint
	ActionSearchNext   = "search.next"
	ActionSearchPrev   = "search.previous"
	ActionSearch       = "search.run"
	ActionSave         = "file.save"
	ActionSaveAs       = "file.saveAs"
	ActionSaveAndExit  = "file.saveAndExit"
	ActionOpen         = "file.open"
	ActionQuit         = "app.quit"
	ActionQuitIfSaved  = "app.quitIfSaved"
	ActionForceQuit    = "app.forceQuit"
	ActionInterrupt    = "app.interrupt"
	ActionCopy         = "clipboard.copy"
	ActionCommandLine  = "command.prompt"
	ActionHelp         = "view.help"
	ActionHistoryList  = "history.list"
	ActionHistoryClear = "history.clear"
	ActionUnknown      = "command.unknown"
)

// editActions change the document.
var editActions = map[string]bool{
	ActionInsertText: true,
	ActionInsertTab:  true,
	ActionNewline:    true,
	ActionBackspace:  true,
	ActionDelete:     true,
}

// IsEdit reports whether the named action mutates the document.
func IsEdit(action string) bool {
	return editActions[action]
}
