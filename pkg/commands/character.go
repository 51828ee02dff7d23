package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func addCharacter(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Add or remove character sections (at most 6)",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Append an empty character section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			id, err := e.svc.AddCharacter(ctx)
			if err != nil {
				return handle(err)
			}
			done("added %s (%s)", id.Title(), id)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a character section; later sections are renumbered",
		Example: `
prompter character rm 1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			i, err := parseIndex(args[0])
			if err != nil {
				return handle(err)
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			if err := e.svc.RemoveCharacter(ctx, i); err != nil {
				return handle(err)
			}
			done("removed character section %d", i)
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	topLevel.AddCommand(cmd)
}
