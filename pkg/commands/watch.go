package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/commands/options"
	"tableflip.dev/prompter/pkg/runner/show"
	"tableflip.dev/prompter/pkg/runner/watch"
	"tableflip.dev/prompter/pkg/section"
)

func addWatch(topLevel *cobra.Command) {
	sto := &options.StyleOptions{}
	outputOnly := false

	cmd := &cobra.Command{
		Use:   "watch [section]",
		Short: "Re-render sections whenever another prompter command changes them",
		Example: `
prompter watch
prompter watch base -o
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: sectionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

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
			w := watch.Watch{
				Service: e.svc,
				Show: show.Show{
					Section:    id,
					Style:      style,
					OutputOnly: outputOnly,
					Wrap:       e.cfg.Wrap(),
				},
				Clear: isatty.IsTerminal(os.Stdout.Fd()),
			}
			return handle(w.Do(ctx))
		},
	}

	options.AddStyleArgs(cmd, sto)
	cmd.Flags().BoolVarP(&outputOnly, "output", "o", false, "Print only the prompt lines.")
	topLevel.AddCommand(cmd)
}
