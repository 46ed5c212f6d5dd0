// Package app runs an editing session: it owns the document, routes decoded
// input through the keymaps to action handlers, and draws each frame.
package app

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/dispatcher"
	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/history"
	"github.com/dshills/linedit/internal/engine/search"
	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/input/mode"
	"github.com/dshills/linedit/internal/integration/clipboard"
	"github.com/dshills/linedit/internal/lang"
	"github.com/dshills/linedit/internal/project/recent"
	"github.com/dshills/linedit/internal/project/vfs"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/overlay"
	"github.com/dshills/linedit/internal/renderer/statusline"
)

// ExitReason records how a session ended.
type ExitReason uint8

const (
	// ExitQuit is a plain quit (q, :q, interrupt).
	ExitQuit ExitReason = iota
	// ExitSaved follows a successful save-and-exit (x, :wq).
	ExitSaved
	// ExitForced is :q! or a closed screen.
	ExitForced
)

// String returns the string representation of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitQuit:
		return "quit"
	case ExitSaved:
		return "saved"
	case ExitForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Options configures a session.
type Options struct {
	// Filename is the document path; empty for an untitled document.
	Filename string
	// Text is the initial document content.
	Text string
	// Encoding is the on-disk encoding used when saving.
	Encoding vfs.Encoding
	// Language is the language tag; empty infers it from Filename.
	Language string
	ReadOnly bool

	Config    *config.Config
	FS        *vfs.FS
	History   recent.Store
	Clipboard clipboard.Clipboard
	Backend   backend.Backend
	Logger    *Logger

	// Wait blocks for the display time of a timed message.
	// Defaults to time.Sleep.
	Wait func(time.Duration)
}

// Result is returned when a session ends.
type Result struct {
	Filename string
	Text     string
	// Modified is the unsaved-changes flag at exit. It stays set when q, q!
	// or an interrupt discards changes, so the caller can report them;
	// it is false when no edits are left unsaved.
	Modified bool
	Reason   ExitReason
}

// Session is a single interactive editing session. It runs on one goroutine.
type Session struct {
	id  string
	cfg *config.Config
	log *Logger

	fs        *vfs.FS
	history   recent.Store
	clipboard clipboard.Clipboard
	backend   backend.Backend

	buf    *buffer.Buffer
	undo   *history.History
	search *search.Index

	renderer   *renderer.Renderer
	overlays   *overlay.Host
	input      *input.Handler
	dispatcher *dispatcher.Dispatcher

	filename  string
	language  string
	encoding  vfs.Encoding
	readOnly  bool
	savedText string

	reason ExitReason
}

// New creates a session from opts. Missing collaborators get defaults: the
// OS file system, an in-memory history and no clipboard.
func New(opts Options) (*Session, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.FS == nil {
		opts.FS = vfs.NewOS()
	}
	if opts.History == nil {
		opts.History = recent.NewMemoryStore()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Unavailable{}
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Encoding == "" {
		opts.Encoding = vfs.EncodingUTF8
	}

	language := lang.Normalize(opts.Language)
	if opts.Language == "" {
		language = lang.FromPath(opts.Filename)
	}

	id := uuid.NewString()
	s := &Session{
		id:        id,
		cfg:       cfg,
		log:       opts.Logger.WithField("session", id),
		fs:        opts.FS,
		history:   opts.History,
		clipboard: opts.Clipboard,
		backend:   opts.Backend,
		buf:       buffer.New(opts.Text, buffer.WithIndentWidth(cfg.Editor.IndentWidth)),
		undo:      history.New(cfg.Editor.UndoLimit),
		search:    search.New(),
		filename:  opts.Filename,
		language:  language,
		encoding:  opts.Encoding,
		readOnly:  opts.ReadOnly,
	}
	s.savedText = s.buf.Text()
	s.undo.Reset(history.Capture(s.buf))

	s.renderer = renderer.New(opts.Backend, renderer.DefaultOptions())
	s.overlays = overlay.NewHost(opts.Backend, s.render)
	if opts.Wait != nil {
		s.overlays.Wait = opts.Wait
	}
	s.overlays.OnOpen = func(t overlay.Type) {
		s.log.Debug("overlay opened: %s", t)
	}

	s.input = input.NewHandler(input.Config{EnableMouse: cfg.UI.Mouse})
	if err := s.applyKeymapOverrides(); err != nil {
		return nil, err
	}
	s.input.ModeManager().OnChange(func(from, to mode.Mode) {
		s.log.Debug("mode %s -> %s", from.Name(), to.Name())
	})

	dcfg := dispatcher.DefaultConfig()
	if s.log.Level() == LogLevelDebug {
		dcfg = dcfg.WithMetrics()
	}
	s.dispatcher = dispatcher.New(dcfg)
	s.registerHandlers()
	s.registerHooks()

	return s, nil
}

// applyKeymapOverrides installs the [keymap.<mode>] tables from the config.
func (s *Session) applyKeymapOverrides() error {
	sections := make([]string, 0, len(s.cfg.Keymap))
	for section := range s.cfg.Keymap {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		target := section
		if section == config.KeymapGlobal {
			target = ""
		}
		binds := s.cfg.Keymap[section]
		keys := make([]string, 0, len(binds))
		for k := range binds {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := s.input.Keymaps().Override(target, k, binds[k]); err != nil {
				return fmt.Errorf("keymap %s: %w", section, err)
			}
		}
	}
	return nil
}

// ID returns the session id used in log lines.
func (s *Session) ID() string { return s.id }

// Buffer returns the document buffer.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Filename returns the current document path.
func (s *Session) Filename() string { return s.filename }

// Language returns the current language tag.
func (s *Session) Language() string { return s.language }

// Mode returns the current input mode name.
func (s *Session) Mode() string { return s.input.Mode() }

// Dispatcher returns the action dispatcher.
func (s *Session) Dispatcher() *dispatcher.Dispatcher { return s.dispatcher }

// Run processes input until an exit action. Each iteration draws a frame,
// waits for one event, and dispatches the action it resolves to.
func (s *Session) Run() Result {
	s.log.Info("session started: file=%q lang=%s readonly=%t", s.filename, s.language, s.readOnly)
	if s.filename != "" {
		s.remember(s.filename)
	}

	for {
		s.render()
		ev := key.Decode(s.backend.PollEvent())
		action, ok := s.input.Resolve(ev)
		if !ok {
			continue
		}
		if s.Handle(action) {
			break
		}
	}

	res := s.result()
	s.log.Info("session ended: reason=%s modified=%t", res.Reason, res.Modified)
	if m := s.dispatcher.Metrics(); m != nil {
		snap := m.Snapshot()
		s.log.Debug("dispatched %d actions", snap.TotalDispatches)
	}
	return res
}

// Handle dispatches one action and applies its result. It returns true
// when the session should end.
func (s *Session) Handle(action input.Action) bool {
	result := s.dispatcher.Dispatch(action)

	if s.overlays.Closed() {
		s.reason = ExitForced
		return true
	}
	if result.ModeChange != "" {
		if err := s.input.ModeManager().Switch(result.ModeChange); err != nil {
			s.log.Warn("mode switch: %v", err)
		}
	}
	if result.Error != nil {
		switch {
		case result.IsError() && !errors.Is(result.Error, dispatcher.ErrNoHandler):
			s.log.Warn("%s: %v", action.Name, result.Error)
		default:
			s.log.Debug("%s: %v", action.Name, result.Error)
		}
	}
	if result.Message != "" {
		delay := s.cfg.MessageDelay()
		if result.IsError() {
			delay = s.cfg.WarningDelay()
		}
		s.overlays.Message(result.Message, delay)
	}
	return result.IsExit()
}

func (s *Session) result() Result {
	return Result{
		Filename: s.filename,
		Text:     s.buf.Text(),
		Modified: s.buf.Modified(),
		Reason:   s.reason,
	}
}

// render draws the document and status line.
func (s *Session) render() {
	s.renderer.Render(s.buf, s.statusInfo())
}

func (s *Session) statusInfo() statusline.Info {
	line, col := s.buf.CursorPosition()
	info := statusline.Info{
		Filename: s.filename,
		Line:     line,
		Col:      col,
		Modified: s.buf.Modified(),
		ReadOnly: s.readOnly,
		Mode:     s.input.ModeManager().Current().DisplayName(),
		Language: s.language,
	}
	if s.search.Active() {
		info.Search = s.search.Pattern()
		info.SearchCount = s.search.Count()
	}
	return info
}

// checkpoint records the current state unless it matches the newest
// history entry.
func (s *Session) checkpoint() {
	snap := history.Capture(s.buf)
	if cur, ok := s.undo.Current(); ok && cur.Equal(snap) {
		return
	}
	s.undo.Push(snap)
}

// restore replaces the document with snap. The modified flag is recomputed
// against the last saved text.
func (s *Session) restore(snap history.Snapshot) {
	snap.RestoreTo(s.buf)
	s.buf.SetModified(s.buf.Text() != s.savedText)
}

// remember records path in the recent-files history.
func (s *Session) remember(path string) {
	if err := s.history.Add(path); err != nil {
		s.log.Warn("history add %s: %v", path, err)
	}
}
