package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
)

// StyleOptions selects the notation used to render output.
type StyleOptions struct {
	Style string
}

func AddStyleArgs(cmd *cobra.Command, o *StyleOptions) {
	cmd.Flags().StringVarP(&o.Style, "style", "s", "",
		"Output notation: keep, bracket, colon or paren. Defaults to the configured style.")
	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		styles := make([]string, 0, len(notation.AllStyles()))
		for _, s := range notation.AllStyles() {
			styles = append(styles, string(s))
		}
		return styles, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve returns the selected style, or fallback when none was given.
func (o *StyleOptions) Resolve(fallback notation.Style) (notation.Style, error) {
	if o.Style == "" {
		return fallback, nil
	}
	s, err := notation.ParseStyle(o.Style)
	if err != nil {
		return "", errs.UserInput(err, "options: --style")
	}
	return s, nil
}
