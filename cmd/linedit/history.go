package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/linedit/internal/app"
	"github.com/dshills/linedit/internal/project/recent"
	"github.com/dshills/linedit/internal/project/vfs"
)

func (c *cli) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recently opened files",
		Long: `Manage recently opened files.

Entries are numbered from 1, most recent first.

Examples:
  linedit history list
  linedit history open 2
  linedit history rm 3
  linedit history clear`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recent files",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(func(env *environment) error {
					return c.printHistory(env.history.List(), env.cfg.History.ListLimit)
				})
			},
		},
		&cobra.Command{
			Use:   "open <n>",
			Short: "Open a recent file read-only",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var path string
				err := c.withHistory(func(env *environment) error {
					entry, err := pick(env.history.List(), args[0])
					path = entry.Path
					return err
				})
				if err != nil {
					return err
				}
				if !vfs.New(c.fs).Exists(path) {
					return fmt.Errorf("%w: %s", app.ErrFileNotFound, path)
				}
				return c.edit(path, editFlags{readOnly: true})
			},
		},
		&cobra.Command{
			Use:   "rm <n>",
			Short: "Remove a recent file entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(func(env *environment) error {
					n, err := entryNumber(args[0])
					if err != nil {
						return err
					}
					return env.history.Remove(n - 1)
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all recent file entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(func(env *environment) error {
					if err := env.history.Clear(); err != nil {
						return err
					}
					fmt.Fprintln(c.out, "History cleared")
					return nil
				})
			},
		},
	)
	return cmd
}

func (c *cli) withHistory(fn func(env *environment) error) error {
	env, err := c.load()
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}

func (c *cli) printHistory(entries []recent.Entry, limit int) error {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(c.out, "(empty)")
		return err
	}
	for i, e := range entries {
		opened := "-"
		if !e.LastOpened.IsZero() {
			opened = e.LastOpened.Local().Format("2006-01-02 15:04")
		}
		if _, err := fmt.Fprintf(c.out, "%3d  %-16s  %s\n", i+1, opened, e.Path); err != nil {
			return err
		}
	}
	return nil
}

func entryNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid entry number %q", arg)
	}
	return n, nil
}

// pick returns the 1-based entry named by arg.
func pick(entries []recent.Entry, arg string) (recent.Entry, error) {
	n, err := entryNumber(arg)
	if err != nil {
		return recent.Entry{}, err
	}
	if n > len(entries) {
		return recent.Entry{}, fmt.Errorf("no history entry %d (%d entries)", n, len(entries))
	}
	return entries[n-1], nil
}
