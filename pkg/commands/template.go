package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/commands/options"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/printers"
	"tableflip.dev/prompter/pkg/snake"
)

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Save and restore every section as a named template",
	}

	fo := &options.ForceOptions{}
	save := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current sections",
		Example: `
prompter template save portrait
prompter template save portrait --force
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			replaced, err := e.svc.SaveTemplate(ctx, args[0], fo.Force)
			if errs.Is(err, errs.ErrTemplateExists) && snake.Interactive(cmd) {
				ok, cerr := snake.Confirm(cmd, fmt.Sprintf("Template %q exists. Overwrite", args[0]))
				if cerr != nil {
					return handle(cerr)
				}
				if !ok {
					return nil
				}
				replaced, err = e.svc.SaveTemplate(ctx, args[0], true)
			}
			if err != nil {
				return handle(err)
			}
			if replaced {
				done("overwrote template %s", args[0])
			} else {
				done("saved template %s", args[0])
			}
			return nil
		},
	}
	options.AddForceArgs(save, fo)

	load := &cobra.Command{
		Use:               "load [name]",
		Short:             "Replace the current sections with a template",
		Long:              base.Wrap80("Without a name, pick the template from a list when running in a terminal."),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: templateCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			name := ""
			switch {
			case len(args) == 1:
				name = args[0]
			case snake.Interactive(cmd):
				if name, err = snake.Choose(cmd, "Template", e.svc.Templates(ctx)); err != nil {
					return handle(err)
				}
			default:
				return handle(errs.WithHint(errs.ErrNameRequired, "pass a template name, see prompter template list"))
			}
			if err := e.svc.LoadTemplate(ctx, name); err != nil {
				return handle(err)
			}
			done("loaded template %s", name)
			return nil
		},
	}

	rfo := &options.ForceOptions{}
	rm := &cobra.Command{
		Use:               "rm <name>",
		Short:             "Delete a template",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			if !rfo.Force && snake.Interactive(cmd) {
				ok, err := snake.Confirm(cmd, fmt.Sprintf("Delete template %q", args[0]))
				if err != nil {
					return handle(err)
				}
				if !ok {
					return nil
				}
			}
			if err := e.svc.DeleteTemplate(ctx, args[0]); err != nil {
				return handle(err)
			}
			done("deleted template %s", args[0])
			return nil
		},
	}

	options.AddForceArgs(rm, rfo)

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			names := e.svc.Templates(ctx)
			if oo.JSON {
				return printJSON(names)
			}
			pp := printers.PrettyPrint{}
			pp.Templates(names)
			return nil
		},
	}
	base.AddOutputArg(list, oo)

	export := &cobra.Command{
		Use:               "export <name>",
		Short:             "Write a template as YAML to stdout",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			data, err := e.svc.ExportTemplate(ctx, args[0])
			if err != nil {
				return handle(err)
			}
			_, err = os.Stdout.Write(data)
			return handle(err)
		},
	}

	ifo := &options.ForceOptions{}
	imp := &cobra.Command{
		Use:   "import [file]",
		Short: "Read a YAML template from a file or stdin",
		Example: `
prompter template export portrait > portrait.yaml
prompter template import portrait.yaml --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return handle(errs.UserInput(err, "template: read import"))
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			name, err := e.svc.ImportTemplate(ctx, data, ifo.Force)
			if err != nil {
				return handle(err)
			}
			done("imported template %s", name)
			return nil
		},
	}
	options.AddForceArgs(imp, ifo)

	cmd.AddCommand(save, load, rm, list, export, imp)
	topLevel.AddCommand(cmd)
}
