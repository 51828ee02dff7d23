package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/commands/options"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/printers"
)

func addExtra(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "extra",
		Short: "Work with the extra scratch section",
	}

	so := &options.SectionOptions{}
	promote := &cobra.Command{
		Use:   "promote <index...>",
		Short: "Copy selected extra tags into another section",
		Example: `
prompter extra promote 0 2 --to negative
`,
		Args: minIndices,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			idx, err := parseIndices(args)
			if err != nil {
				return handle(err)
			}
			dest, err := so.ID()
			if err != nil {
				return handle(err)
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			if err := e.svc.PromoteExtras(ctx, idx, dest); err != nil {
				return handle(err)
			}
			done("copied %d tags to %s", len(idx), dest.Title())
			return nil
		},
	}
	options.AddSectionArgs(promote, so)
	_ = promote.RegisterFlagCompletionFunc("to", sectionCompletions)

	discard := &cobra.Command{
		Use:   "discard <index...>",
		Short: "Remove selected extra tags and their duplicates",
		Args:  minIndices,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			idx, err := parseIndices(args)
			if err != nil {
				return handle(err)
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			n, err := e.svc.DiscardExtras(ctx, idx)
			if err != nil {
				return handle(err)
			}
			done("removed %d tags", n)
			return nil
		},
	}

	entries := &cobra.Command{
		Use:   "entries",
		Short: "Show dictionary entries for the tags in extra",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			v := e.svc.ExtraEntries(ctx)
			if oo.JSON {
				return printJSON(v)
			}
			pp := printers.PrettyPrint{}
			pp.Dictionary(v)
			return nil
		},
	}
	base.AddOutputArg(entries, oo)

	cmd.AddCommand(promote, discard, entries)
	topLevel.AddCommand(cmd)
}

func minIndices(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errs.WithHint(errs.ErrEmptySelection, "pass one or more extra indices, see prompter show extra")
	}
	return nil
}
