package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are persistent flags shared by every command.
type GlobalOptions struct {
	Verbosity int
	LogJSON   bool
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().CountVarP(&o.Verbosity, "verbose", "v",
		"Log more. Repeat for debug output (-vv).")
	cmd.PersistentFlags().BoolVar(&o.LogJSON, "log-json", false,
		"Write logs as JSON.")
}
