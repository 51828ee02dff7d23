package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/commands/options"
	"tableflip.dev/prompter/pkg/runner/show"
	"tableflip.dev/prompter/pkg/section"
)

func addShow(topLevel *cobra.Command) {
	sto := &options.StyleOptions{}
	outputOnly := false

	cmd := &cobra.Command{
		Use:     "show [section]",
		Aliases: []string{"get", "ls"},
		Short:   "Show sections and their prompt lines",
		Example: `
prompter show
prompter show base --style colon
prompter show negative -o
prompter show --json
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: sectionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var id section.ID
			if len(args) == 1 {
				var err error
				if id, err = section.ParseID(args[0]); err != nil {
					return handle(err)
				}
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			style, err := sto.Resolve(e.cfg.Style())
			if err != nil {
				return handle(err)
			}
			s := show.Show{
				Service:    e.svc,
				Section:    id,
				Style:      style,
				OutputOnly: outputOnly,
				JSON:       oo.JSON,
				Wrap:       e.cfg.Wrap(),
			}
			return handle(s.Do(ctx))
		},
	}

	options.AddStyleArgs(cmd, sto)
	cmd.Flags().BoolVarP(&outputOnly, "output", "o", false, "Print only the prompt lines.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
