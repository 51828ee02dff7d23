package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/commands/options"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/printers"
)

func addLoad(topLevel *cobra.Command) {
	so := &options.SectionOptions{}

	cmd := &cobra.Command{
		Use:   "load <tags...>",
		Short: "Load comma separated tags into a section",
		Long: base.Wrap80("Split comma separated input into tags and append them to the " +
			"destination section. A tag starting with ! goes to the negative prompt and " +
			"one starting with # goes to extra, where its text is added to the dictionary. " +
			"Groups like {{a, b}} or (a, b:1.2) are expanded into one tag per member."),
		Example: `
prompter load "masterpiece, {{sunset}}, !lowres, #1.2::cloud::"
prompter load --to character-0 "1girl, (smile, blush:1.1)"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errs.WithHint(errs.ErrEmptySelection, "pass the tags to load")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dest, err := so.ID()
			if err != nil {
				return handle(err)
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			res, err := e.svc.Route(ctx, strings.Join(args, " "), dest)
			if err != nil {
				return handle(err)
			}
			if oo.JSON {
				return printJSON(res)
			}
			pp := printers.PrettyPrint{}
			pp.Routed(res)
			return nil
		},
	}

	options.AddSectionArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("to", sectionCompletions)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
