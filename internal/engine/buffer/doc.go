// Package buffer provides the line-oriented document model for the editor.
//
// A Buffer is an ordered list of lines that is never empty, plus a single
// cursor. Every mutation keeps the cursor inside the document:
//
//	0 <= line < LineCount()
//	0 <= col  <= rune length of the cursor line
//
// Columns are measured in runes, not bytes, so multi-byte characters count
// as one position.
//
// # Editing policy
//
// InsertChar auto-pairs brackets and quotes and types through an existing
// closer. SplitLine carries the current line's indentation onto the new line
// and adds one indent unit after a block opener (colon or opening bracket).
//
//	buf := buffer.New("def f():")
//	buf.End()
//	buf.SplitLine() // ["def f():", "    "], cursor (1, 4)
package buffer
