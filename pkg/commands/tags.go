package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/section"
	"tableflip.dev/prompter/pkg/weight"
)

// tagAction is a per-tag edit on one section. args excludes the section.
type tagAction struct {
	use     string
	short   string
	example string
	nargs   int
	run     func(ctx context.Context, e *env, id section.ID, args []string) (string, error)
}

func addTagCommands(topLevel *cobra.Command) {
	actions := []tagAction{{
		use:     "add <section> <tag>",
		short:   "Append a tag exactly as written",
		example: "prompter add base \"{{night sky}}\"",
		nargs:   1,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			return "added to " + string(id), e.svc.Append(ctx, id, args[0])
		},
	}, {
		use:     "edit <section> <index> <text>",
		short:   "Change the text of a tag, keeping its emphasis",
		example: "prompter edit base 0 \"starry sky\"",
		nargs:   2,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			i, err := parseIndex(args[0])
			if err != nil {
				return "", err
			}
			return "edited", e.svc.EditText(ctx, id, i, args[1])
		},
	}, {
		use:     "up <section> <index>",
		short:   "Add one level of emphasis",
		example: "prompter up base 0",
		nargs:   1,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			i, err := parseIndex(args[0])
			if err != nil {
				return "", err
			}
			return "raised", e.svc.StepUp(ctx, id, i)
		},
	}, {
		use:     "down <section> <index>",
		short:   "Remove one level of emphasis",
		example: "prompter down base 0",
		nargs:   1,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			i, err := parseIndex(args[0])
			if err != nil {
				return "", err
			}
			return "lowered", e.svc.StepDown(ctx, id, i)
		},
	}, {
		use:     "weight <section> <index> <value>",
		short:   "Set an explicit weight; exact table values become brackets",
		example: "prompter weight base 0 1.55\nprompter weight base 1 1.5",
		nargs:   2,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			i, err := parseIndex(args[0])
			if err != nil {
				return "", err
			}
			w, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return "", errs.Wrapf(errs.ErrInvalidWeight, "%q", args[1])
			}
			return "weight set to " + weight.Format(w), e.svc.SetWeight(ctx, id, i, w)
		},
	}, {
		use:     "rm <section> <index>",
		short:   "Remove a tag",
		example: "prompter rm negative 2",
		nargs:   1,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			i, err := parseIndex(args[0])
			if err != nil {
				return "", err
			}
			return "removed", e.svc.Remove(ctx, id, i)
		},
	}, {
		use:     "mv <section> <from> <to>",
		short:   "Move a tag within its section",
		example: "prompter mv base 3 0",
		nargs:   2,
		run: func(ctx context.Context, e *env, id section.ID, args []string) (string, error) {
			from, err := parseIndex(args[0])
			if err != nil {
				return "", err
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return "", err
			}
			return "moved", e.svc.Move(ctx, id, from, to)
		},
	}, {
		use:     "clear <section>",
		short:   "Remove every tag from a section",
		example: "prompter clear extra",
		nargs:   0,
		run: func(ctx context.Context, e *env, id section.ID, _ []string) (string, error) {
			return "cleared " + string(id), e.svc.Clear(ctx, id)
		},
	}}

	for _, a := range actions {
		addTagAction(topLevel, a)
	}
}

func addTagAction(topLevel *cobra.Command, a tagAction) {
	cmd := &cobra.Command{
		Use:     a.use,
		Short:   a.short,
		Example: "\n" + a.example + "\n",
		Args:    cobra.ExactArgs(a.nargs + 1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return sectionCompletions(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := section.ParseID(args[0])
			if err != nil {
				return handle(err)
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			msg, err := a.run(ctx, e, id, args[1:])
			if err != nil {
				return handle(err)
			}
			out, _ := e.svc.Output(ctx, id, e.cfg.Style())
			done("%s\n%s", msg, out)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
