package app

import "strings"

const helpBody = `LINEDIT HELP

Modes
  NORMAL       keys are commands; start here
  INSERT       keys edit the document
  i            NORMAL -> INSERT
  Esc          INSERT -> NORMAL

NORMAL keys
  s            save
  o            save as (asks for a file name)
  x            save and exit
  q            exit, discarding changes
  c            copy the document to the clipboard
  n / N        next / previous search match
  :            command line
  Ctrl+C       exit, asking to save unsaved changes

Command line
  :w           save
  :wq          save and exit
  :q           exit if there are no unsaved changes
  :q!          exit, discarding changes
  :u           undo
  :r           redo
  :/pattern    search (regular expression, or plain text if invalid)
  :e path      open a file
  :ls          recent files
  :clearhist   clear recent files
  :help, :h    this help

Navigation
  Arrows       move the cursor; Left/Right wrap across lines
  PgUp/PgDn    move half a screen
  Home/End     start / end of line
  Mouse        click to place the cursor

Editing
  Brackets and quotes are closed automatically; typing the closer
  steps over it. Enter keeps the indentation of the current line and
  indents once more after a line ending in ':' or an opening bracket.

Search
  Results are not refreshed after edits; search again to update them.

Undo
  Each edit is one undo step. Opening a file starts a new history.
`

// HelpText returns the help viewer content. historyPath is shown when set.
func HelpText(historyPath string) string {
	if historyPath == "" {
		return helpBody
	}
	var sb strings.Builder
	sb.WriteString(helpBody)
	sb.WriteString("\nHistory\n  Recent files are kept in ")
	sb.WriteString(historyPath)
	sb.WriteString("\n")
	return sb.String()
}
