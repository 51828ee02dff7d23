package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/section"
	"tableflip.dev/prompter/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(prompter completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(prompter completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// quietService opens the stores without logging, for shell completion.
func quietService() *app.Service {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg, nil)
	if err != nil {
		return nil
	}
	svc := app.New(p, nil)
	if err := svc.Open(context.Background()); err != nil {
		return nil
	}
	return svc
}

func sectionCompletions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	ids := []section.ID{section.Base, section.Character(0), section.Negative, section.Extra}
	if svc := quietService(); svc != nil {
		ids = svc.Targets(context.Background())
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func templateCompletions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	svc := quietService()
	if svc == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return svc.Templates(context.Background()), cobra.ShellCompDirectiveNoFileComp
}

func categoryCompletions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	svc := quietService()
	if svc == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, c := range svc.Categories(context.Background()) {
		out = append(out, c.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
