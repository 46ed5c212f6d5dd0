package app

import (
	"errors"
	"strings"

	"github.com/dshills/linedit/internal/dispatcher"
	"github.com/dshills/linedit/internal/dispatcher/handler"
	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/input/keymap"
	"github.com/dshills/linedit/internal/input/mode"
	"github.com/dshills/linedit/internal/project/recent"
)

// Messages shown in the timed message box.
const (
	msgInsertHint     = "Press 'i' to enter insert mode."
	msgNoMatches      = "No matches"
	msgUnsaved        = "Unsaved changes. Use x to save+exit or q! to force quit"
	msgFileNotFound   = "File not found"
	msgHistoryCleared = "History cleared"
	msgCopied         = "Copied to clipboard."
	msgNoClipboard    = "Clipboard not available. Showing content."
	msgReadOnly       = "Document is read-only"
	msgInterrupt      = "Unsaved changes. Save? (y/N): "
	emptyHistory      = "(empty)"
)

// registerHandlers binds every keymap action to the session.
func (s *Session) registerHandlers() {
	d := s.dispatcher

	d.RegisterHandlerFunc(keymap.ActionMoveLeft, s.move((*buffer.Buffer).MoveLeft))
	d.RegisterHandlerFunc(keymap.ActionMoveRight, s.move((*buffer.Buffer).MoveRight))
	d.RegisterHandlerFunc(keymap.ActionMoveUp, s.move((*buffer.Buffer).MoveUp))
	d.RegisterHandlerFunc(keymap.ActionMoveDown, s.move((*buffer.Buffer).MoveDown))
	d.RegisterHandlerFunc(keymap.ActionLineStart, s.move((*buffer.Buffer).Home))
	d.RegisterHandlerFunc(keymap.ActionLineEnd, s.move((*buffer.Buffer).End))
	d.RegisterHandlerFunc(keymap.ActionPageUp, s.move(func(b *buffer.Buffer) { b.MoveLines(-s.pageStep()) }))
	d.RegisterHandlerFunc(keymap.ActionPageDown, s.move(func(b *buffer.Buffer) { b.MoveLines(s.pageStep()) }))
	d.RegisterHandlerFunc(keymap.ActionClick, s.handleClick)

	d.RegisterHandlerFunc(keymap.ActionInsertText, func(a input.Action) handler.Result {
		return s.edit(func(b *buffer.Buffer) { b.InsertChar(a.Args.Text) })
	})
	d.RegisterHandlerFunc(keymap.ActionInsertTab, func(input.Action) handler.Result {
		tab := strings.Repeat(" ", s.cfg.Editor.TabWidth)
		return s.edit(func(b *buffer.Buffer) { b.InsertChar(tab) })
	})
	d.RegisterHandlerFunc(keymap.ActionNewline, func(input.Action) handler.Result {
		return s.edit((*buffer.Buffer).SplitLine)
	})
	d.RegisterHandlerFunc(keymap.ActionBackspace, func(input.Action) handler.Result {
		return s.edit((*buffer.Buffer).Backspace)
	})
	d.RegisterHandlerFunc(keymap.ActionDelete, func(input.Action) handler.Result {
		return s.edit((*buffer.Buffer).DeleteForward)
	})
	d.RegisterHandlerFunc(keymap.ActionUndo, s.handleUndo)
	d.RegisterHandlerFunc(keymap.ActionRedo, s.handleRedo)

	d.RegisterHandlerFunc(keymap.ActionModeInsert, func(input.Action) handler.Result {
		return handler.Success().WithModeChange(mode.ModeInsert)
	})
	d.RegisterHandlerFunc(keymap.ActionModeNormal, func(input.Action) handler.Result {
		return handler.Success().WithModeChange(mode.ModeNormal)
	})
	d.RegisterHandlerFunc(keymap.ActionInsertHint, func(input.Action) handler.Result {
		return handler.NoOpWithMessage(msgInsertHint)
	})

	d.RegisterHandlerFunc(keymap.ActionSearch, s.handleSearch)
	d.RegisterHandlerFunc(keymap.ActionSearchNext, s.handleSearchStep(true))
	d.RegisterHandlerFunc(keymap.ActionSearchPrev, s.handleSearchStep(false))

	d.RegisterHandlerFunc(keymap.ActionSave, func(input.Action) handler.Result {
		return s.saveResult(s.save(false))
	})
	d.RegisterHandlerFunc(keymap.ActionSaveAs, func(input.Action) handler.Result {
		return s.saveResult(s.save(true))
	})
	d.RegisterHandlerFunc(keymap.ActionSaveAndExit, s.handleSaveAndExit)
	d.RegisterHandlerFunc(keymap.ActionOpen, s.handleOpen)

	d.RegisterHandlerFunc(keymap.ActionQuit, func(input.Action) handler.Result {
		return s.exit(ExitQuit)
	})
	d.RegisterHandlerFunc(keymap.ActionQuitIfSaved, func(input.Action) handler.Result {
		if s.buf.Modified() {
			return handler.Error(ErrUnsavedChanges).WithMessage(msgUnsaved)
		}
		return s.exit(ExitQuit)
	})
	d.RegisterHandlerFunc(keymap.ActionForceQuit, func(input.Action) handler.Result {
		return s.exit(ExitForced)
	})
	d.RegisterHandlerFunc(keymap.ActionInterrupt, s.handleInterrupt)

	d.RegisterHandlerFunc(keymap.ActionCopy, s.handleCopy)
	d.RegisterHandlerFunc(keymap.ActionCommandLine, s.handleCommandLine)
	d.RegisterHandlerFunc(keymap.ActionHelp, func(input.Action) handler.Result {
		s.overlays.Help(HelpText(s.historyLocation()))
		return handler.Success()
	})
	d.RegisterHandlerFunc(keymap.ActionHistoryList, s.handleHistoryList)
	d.RegisterHandlerFunc(keymap.ActionHistoryClear, s.handleHistoryClear)
	d.RegisterHandlerFunc(keymap.ActionUnknown, func(a input.Action) handler.Result {
		s.log.Debug("unknown command %q", a.Args.Text)
		return handler.NoOpWithMessage("Unknown command: " + a.Args.Text)
	})

	d.RegisterHandlerFunc(input.ActionRedraw, func(input.Action) handler.Result {
		s.renderer.Invalidate()
		return handler.NoOp()
	})
}

// registerHooks takes undo checkpoints around every edit.
func (s *Session) registerHooks() {
	s.dispatcher.RegisterPreHook(dispatcher.PreDispatchFunc(func(a *input.Action) bool {
		if keymap.IsEdit(a.Name) {
			s.checkpoint()
		}
		return true
	}))
	s.dispatcher.RegisterPostHook(dispatcher.PostDispatchFunc(func(a *input.Action, r *handler.Result) {
		if keymap.IsEdit(a.Name) && r.IsOK() {
			s.checkpoint()
		}
	}))
	if s.log.Level() == LogLevelDebug {
		hook := &dispatcher.LoggingHook{LogFunc: s.log.WithComponent("dispatcher").Debug}
		s.dispatcher.RegisterPreHook(hook)
		s.dispatcher.RegisterPostHook(hook)
	}
}

func (s *Session) pageStep() int {
	return s.renderer.Viewport().HalfPage()
}

func (s *Session) move(fn func(*buffer.Buffer)) func(input.Action) handler.Result {
	return func(input.Action) handler.Result {
		fn(s.buf)
		return handler.Success()
	}
}

// edit applies a document mutation. Edits are accepted only in insert mode,
// and not at all in an enforced read-only session.
func (s *Session) edit(fn func(*buffer.Buffer)) handler.Result {
	if s.input.Mode() != mode.ModeInsert {
		return handler.NoOpWithMessage(msgInsertHint)
	}
	if s.readOnly && s.cfg.Editor.EnforceReadOnly {
		return handler.Error(ErrReadOnly).WithMessage(msgReadOnly)
	}
	fn(s.buf)
	return handler.Success()
}

func (s *Session) exit(reason ExitReason) handler.Result {
	s.reason = reason
	return handler.Exit()
}

func (s *Session) handleClick(a input.Action) handler.Result {
	line, col, ok := s.renderer.HitTest(s.buf, a.Args.X, a.Args.Y)
	if !ok {
		return handler.NoOp()
	}
	s.buf.SetCursor(buffer.Position{Line: line, Col: col})
	return handler.Success()
}

func (s *Session) handleUndo(input.Action) handler.Result {
	snap, ok := s.undo.Undo()
	if !ok {
		return handler.NoOp()
	}
	s.restore(snap)
	return handler.Success()
}

func (s *Session) handleRedo(input.Action) handler.Result {
	snap, ok := s.undo.Redo()
	if !ok {
		return handler.NoOp()
	}
	s.restore(snap)
	return handler.Success()
}

func (s *Session) handleSearch(a input.Action) handler.Result {
	count := s.search.Run(a.Args.Text, s.buf.Lines())
	if !s.search.Active() {
		return handler.NoOp()
	}
	s.log.WithFields(map[string]any{
		"matches": count,
		"literal": s.search.Literal(),
	}).Debug("search %q", a.Args.Text)
	if count == 0 {
		return handler.NoOpWithMessage(msgNoMatches)
	}
	s.jumpToMatch()
	return handler.SuccessWithMessage(formatFound(count))
}

func (s *Session) handleSearchStep(forward bool) func(input.Action) handler.Result {
	return func(input.Action) handler.Result {
		var ok bool
		if forward {
			_, ok = s.search.Next()
		} else {
			_, ok = s.search.Previous()
		}
		if !ok {
			return handler.NoOpWithMessage(msgNoMatches)
		}
		s.jumpToMatch()
		return handler.Success()
	}
}

func (s *Session) jumpToMatch() {
	if m, ok := s.search.Current(); ok {
		s.buf.SetCursor(buffer.Position{Line: m.Line, Col: m.Col})
	}
}

func (s *Session) handleSaveAndExit(input.Action) handler.Result {
	if err := s.save(false); err != nil {
		return s.saveResult(err)
	}
	return s.exit(ExitSaved)
}

func (s *Session) handleOpen(a input.Action) handler.Result {
	err := s.open(a.Args.Text)
	switch {
	case err == nil:
		return handler.Success()
	case errors.Is(err, ErrFileNotFound):
		return handler.Error(err).WithMessage(msgFileNotFound)
	default:
		return handler.Error(err).WithMessage("Error opening: " + cause(err).Error())
	}
}

// handleInterrupt leaves the session, offering to save unsaved changes.
func (s *Session) handleInterrupt(input.Action) handler.Result {
	if !s.buf.Modified() {
		return s.exit(ExitQuit)
	}
	answer, ok := s.overlays.Prompt(msgInterrupt)
	if s.overlays.Closed() {
		return s.exit(ExitForced)
	}
	if ok && strings.EqualFold(strings.TrimSpace(answer), "y") {
		if err := s.save(false); err != nil {
			return s.saveResult(err)
		}
		return s.exit(ExitSaved)
	}
	return s.exit(ExitQuit)
}

func (s *Session) handleCopy(input.Action) handler.Result {
	text := s.buf.Text()
	if err := s.clipboard.WriteAll(text); err != nil {
		s.log.Warn("clipboard: %v", err)
		s.overlays.Message(msgNoClipboard, s.cfg.MessageDelay())
		s.overlays.Popup(text)
		return handler.NoOp()
	}
	return handler.SuccessWithMessage(msgCopied)
}

// handleCommandLine reads a command line and dispatches the action it
// names.
func (s *Session) handleCommandLine(input.Action) handler.Result {
	line, ok := s.overlays.Prompt(":")
	if !ok {
		return handler.Cancelled()
	}
	action, ok := ParseCommand(line)
	if !ok {
		return handler.NoOp()
	}
	return s.dispatcher.Dispatch(action)
}

func (s *Session) handleHistoryList(input.Action) handler.Result {
	paths := recent.Paths(s.history.List(), s.cfg.History.ListLimit)
	text := emptyHistory
	if len(paths) > 0 {
		text = strings.Join(paths, "\n")
	}
	s.overlays.Popup(text)
	return handler.Success()
}

func (s *Session) handleHistoryClear(input.Action) handler.Result {
	if err := s.history.Clear(); err != nil {
		return handler.Error(err).WithMessage("History error: " + err.Error())
	}
	return handler.SuccessWithMessage(msgHistoryCleared)
}

// historyLocation returns where the recent-files store lives, if it has a
// location.
func (s *Session) historyLocation() string {
	if p, ok := s.history.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}
