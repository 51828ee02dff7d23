// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/section"
)

// SectionOptions captures the destination section of a command.
type SectionOptions struct {
	To string
}

// AddSectionArgs wires the --to flag on the provided command.
func AddSectionArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.To, "to", "t", string(section.Base),
		"Destination section: base, negative, extra or character-<n>.")
}

// ID validates the flag value.
func (o *SectionOptions) ID() (section.ID, error) {
	return section.ParseID(o.To)
}
