package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dshills/linedit/internal/app"
	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/config/loader"
	"github.com/dshills/linedit/internal/integration/clipboard"
	"github.com/dshills/linedit/internal/project/recent"
	"github.com/dshills/linedit/internal/project/vfs"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// cli holds the collaborators and flag values shared by all commands.
type cli struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer
	home   string
	env    loader.Loader

	newBackend   func() (backend.Backend, error)
	newClipboard func() clipboard.Clipboard
	wait         func(time.Duration)

	configPath string
	logLevel   string
	logFile    string
}

func newCLI() *cli {
	home, _ := os.UserHomeDir()
	return &cli{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		errOut: os.Stderr,
		home:   home,
		env:    loader.NewEnvLoader(),
		newBackend: func() (backend.Backend, error) {
			return backend.NewTerminal()
		},
		newClipboard: clipboard.NewSystem,
	}
}

// editFlags are the flags of commands that start a session.
type editFlags struct {
	lang     string
	readOnly bool
	create   bool
}

func (f *editFlags) bind(cmd *cobra.Command, withReadOnly bool) {
	cmd.Flags().StringVarP(&f.lang, "lang", "l", "", "language tag (see 'linedit langs'); inferred from the file name when empty")
	if withReadOnly {
		cmd.Flags().BoolVar(&f.readOnly, "readonly", false, "mark the session read-only")
	}
}

func (c *cli) rootCommand() *cobra.Command {
	var flags editFlags
	root := &cobra.Command{
		Use:   "linedit [file]",
		Short: "A small modal terminal text editor",
		Long: `A small modal terminal text editor.

Sessions start in NORMAL mode: press i to type, Esc to stop typing, :help for
the key and command reference. A missing file is created on first save.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.edit(path, flags)
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"config file, .toml or .yaml (default: ~/.config/linedit/config.toml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "write the session log to this file")
	flags.bind(root, true)

	root.AddCommand(c.newCommand(), c.openCommand(), c.historyCommand(), c.langsCommand())
	return root
}

func (c *cli) newCommand() *cobra.Command {
	var flags editFlags
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start an untitled document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit("", flags)
		},
	}
	flags.bind(cmd, false)
	return cmd
}

func (c *cli) openCommand() *cobra.Command {
	var flags editFlags
	cmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Open an existing file",
		Long:  `Open an existing file. Missing files are refused unless --create is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.create && !vfs.New(c.fs).Exists(args[0]) {
				return fmt.Errorf("%w: %s", app.ErrFileNotFound, args[0])
			}
			return c.edit(args[0], flags)
		},
	}
	flags.bind(cmd, true)
	cmd.Flags().BoolVar(&flags.create, "create", false, "create the file if it does not exist")
	return cmd
}

// environment is what a command needs after config has been loaded.
type environment struct {
	cfg     *config.Config
	log     *app.Logger
	history recent.Store
	closers []io.Closer
}

func (e *environment) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

// load reads the config, applies flag overrides and opens the logger and
// history store.
func (c *cli) load() (*environment, error) {
	path := c.configPath
	if path == "" {
		candidate := filepath.Join(c.home, ".config", "linedit", "config.toml")
		if ok, _ := afero.Exists(c.fs, candidate); ok {
			path = candidate
		}
	}
	cfg, err := config.Load(c.fs, path, c.env)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	if c.logFile != "" {
		cfg.Logging.File = c.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	env := &environment{cfg: cfg}
	logger, closer, err := app.OpenLogFile(c.fs, cfg.Logging.File, app.ParseLogLevel(cfg.Logging.Level))
	if err != nil {
		return nil, err
	}
	env.log = logger
	env.closers = append(env.closers, closer)

	store := c.openHistory(cfg, logger)
	env.history = store
	env.closers = append(env.closers, store)
	return env, nil
}

// openHistory returns the configured store. A database that cannot be opened
// leaves the session with an empty in-memory history.
func (c *cli) openHistory(cfg *config.Config, log *app.Logger) recent.Store {
	path := cfg.HistoryPath(c.home)
	switch cfg.History.Backend {
	case config.BackendSQLite:
		store, err := recent.OpenSQLiteStore(path)
		if err != nil {
			log.WithField("path", path).Warn("history unavailable: %v", err)
			return recent.NewMemoryStore()
		}
		return store
	case config.BackendMemory:
		return recent.NewMemoryStore()
	default:
		return recent.NewJSONStore(c.fs, path)
	}
}

// edit runs a session on path, which may be empty or name a missing file.
func (c *cli) edit(path string, flags editFlags) error {
	env, err := c.load()
	if err != nil {
		return err
	}
	defer env.Close()

	files := vfs.New(c.fs)
	opts := app.Options{
		Filename:  path,
		Language:  flags.lang,
		ReadOnly:  flags.readOnly,
		Config:    env.cfg,
		FS:        files,
		History:   env.history,
		Clipboard: c.newClipboard(),
		Logger:    env.log,
		Wait:      c.wait,
	}
	if path != "" && files.Exists(path) {
		doc, err := files.Read(path)
		if err != nil {
			return app.NewOperationError("open", path, err)
		}
		opts.Text = doc.Text
		opts.Encoding = doc.Encoding
	}

	b, err := c.newBackend()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	shutdown := sync.OnceFunc(b.Shutdown)
	defer shutdown()
	if env.cfg.UI.Mouse {
		b.EnableMouse()
	}
	stop := onSignal(shutdown)
	defer stop()

	opts.Backend = b
	session, err := app.New(opts)
	if err != nil {
		return err
	}
	res := session.Run()
	shutdown()

	if res.Modified {
		name := res.Filename
		if name == "" {
			name = "untitled document"
		}
		fmt.Fprintf(c.errOut, "unsaved changes to %s were discarded\n", name)
	}
	return nil
}

// onSignal calls fn when the process is asked to terminate. Finalizing the
// screen ends the session as a forced quit.
func onSignal(fn func()) (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		select {
		case <-signals:
			fn()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
	}
}
