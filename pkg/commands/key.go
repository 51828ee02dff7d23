package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	sample := ""
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the bracket level to weight tables",
		Example: `
prompter key
prompter key --sample sunset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Sample: sample}
			return handle(k.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&sample, "sample", "tag", "Tag text used in the examples.")
	topLevel.AddCommand(cmd)
}
