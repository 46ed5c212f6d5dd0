package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/linedit/internal/dispatcher/handler"
	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/history"
	"github.com/dshills/linedit/internal/lang"
	"github.com/dshills/linedit/internal/project/vfs"
)

func formatFound(count int) string {
	return fmt.Sprintf("Found %d matches. Jumped to first.", count)
}

// cause strips an OperationError down to the collaborator's error.
func cause(err error) error {
	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return opErr.Err
	}
	return err
}

// saveAsLabel returns the filename prompt, which names the default.
func saveAsLabel(suggested string) string {
	return fmt.Sprintf("Save As (default: %s): ", suggested)
}

// save writes the document to its file. With no filename, or when prompt is
// set, the user is asked for one first; an empty answer takes the suggested
// name. The filename and modified flag change only on success.
func (s *Session) save(prompt bool) error {
	if s.readOnly && s.cfg.Editor.EnforceReadOnly {
		return ErrReadOnly
	}

	name := s.filename
	if name == "" || prompt {
		suggested := lang.DefaultFilename(s.language)
		answer, ok := s.overlays.Prompt(saveAsLabel(suggested))
		if !ok {
			return ErrSaveCancelled
		}
		name = strings.TrimSpace(answer)
		if name == "" {
			name = suggested
		}
	}

	text := s.buf.Text()
	doc := vfs.Document{Path: name, Text: text, Encoding: s.encoding}
	if err := s.fs.Write(doc); err != nil {
		s.log.Warn("save %s failed: %v", name, err)
		return NewOperationError("save", name, err)
	}

	if name != s.filename && s.language == lang.Text {
		s.language = lang.FromPath(name)
	}
	s.filename = name
	s.savedText = text
	s.buf.SetModified(false)
	s.remember(name)
	s.log.Info("saved %s (%d lines)", name, s.buf.LineCount())
	return nil
}

// saveResult maps a save outcome to a handler result.
func (s *Session) saveResult(err error) handler.Result {
	switch {
	case err == nil:
		return handler.SuccessWithMessage("Saved " + s.filename)
	case errors.Is(err, ErrSaveCancelled):
		return handler.Cancelled()
	case errors.Is(err, ErrReadOnly):
		return handler.Error(err).WithMessage(msgReadOnly)
	default:
		return handler.Error(err).WithMessage("Save error: " + cause(err).Error())
	}
}

// open replaces the document with the contents of path. The cursor moves
// to the start, undo history restarts and the search is cleared.
func (s *Session) open(path string) error {
	path = strings.TrimSpace(path)
	if !s.fs.Exists(path) {
		s.log.Warn("open %s: not found", path)
		return NewOperationError("open", path, ErrFileNotFound)
	}
	doc, err := s.fs.Read(path)
	if err != nil {
		s.log.Warn("open %s failed: %v", path, err)
		return NewOperationError("open", path, err)
	}

	s.buf.Replace(buffer.SplitLines(doc.Text), buffer.Position{})
	s.buf.SetModified(false)
	s.filename = doc.Path
	s.language = lang.FromPath(doc.Path)
	s.encoding = doc.Encoding
	s.savedText = s.buf.Text()
	s.undo.Reset(history.Capture(s.buf))
	s.search.Reset()
	s.remember(doc.Path)
	s.log.Info("opened %s (%s, %d lines)", doc.Path, doc.Encoding, s.buf.LineCount())
	return nil
}
