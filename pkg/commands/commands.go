package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/commands/options"
)

var (
	oo    = &base.OutputOptions{}
	gopts = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "prompter",
		Short: base.Wrap80("Edit weighted prompt tags for image generators on the command line."),
		Long: base.Wrap80("Tags are kept in a base prompt, up to six character prompts, " +
			"a negative prompt and an extra scratch area. Emphasis is written with " +
			"{braces}, [brackets], W::text:: or (text:W)."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, gopts)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLoad(topLevel)
	addShow(topLevel)
	addTagCommands(topLevel)
	addCharacter(topLevel)
	addExtra(topLevel)
	addDict(topLevel)
	addTemplate(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
