package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/linedit/internal/lang"
)

func (c *cli) langsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List language tags and their file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range lang.Tags() {
				if _, err := fmt.Fprintf(c.out, "%-12s %s\n", tag, lang.Extension(tag)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
