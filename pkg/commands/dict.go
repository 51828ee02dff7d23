package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/printers"
)

func addDict(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "dict",
		Aliases: []string{"dictionary"},
		Short:   "Manage tag descriptions and categories",
	}

	cmd.AddCommand(
		dictDescribe(),
		dictCategory(),
		dictRemove(),
		dictSearch(),
		dictImport(),
		dictExport(),
		dictCategories(),
	)
	topLevel.AddCommand(cmd)
}

func dictDescribe() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <tag> <description...>",
		Short: "Set the description of a tag",
		Example: `
prompter dict describe sunset "warm evening light"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			desc := strings.Join(args[1:], " ")
			if err := e.svc.Describe(ctx, args[0], desc); err != nil {
				return handle(err)
			}
			done("described %s", args[0])
			return nil
		},
	}
}

func dictCategory() *cobra.Command {
	return &cobra.Command{
		Use:   "category <category> <tag...>",
		Short: "Assign a category to one or more tags; an empty category clears it",
		Example: `
prompter dict category scene sunset castle
prompter dict category "" sunset
`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return categoryCompletions(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			if err := e.svc.Categorize(ctx, args[0], args[1:]...); err != nil {
				return handle(err)
			}
			done("categorised %d tags", len(args)-1)
			return nil
		},
	}
}

func dictRemove() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tag>",
		Short: "Delete a tag from the dictionary and from extra",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			n, err := e.svc.DeleteTag(ctx, args[0])
			if err != nil {
				return handle(err)
			}
			done("deleted %s (%d removed from extra)", args[0], n)
			return nil
		},
	}
}

func dictSearch() *cobra.Command {
	into := false
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search tags, descriptions and categories",
		Long: base.Wrap80("Search matches case-insensitively against tag text, description " +
			"and category. With --into-extra the extra section is replaced by the results."),
		Example: `
prompter dict search sky
prompter dict search scene --into-extra
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			query := strings.Join(args, " ")
			v := e.svc.Search(ctx, query)
			if into {
				if _, err := e.svc.SearchIntoExtra(ctx, query); err != nil {
					return handle(err)
				}
			}
			if oo.JSON {
				return printJSON(v)
			}
			pp := printers.PrettyPrint{}
			pp.Dictionary(v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&into, "into-extra", false, "Replace the extra section with the results.")
	base.AddOutputArg(cmd, oo)
	return cmd
}

func dictImport() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import aligned text (Tag, Description, Category columns)",
		Long: base.Wrap80("Columns are separated by a tab, two or more spaces, or full-width " +
			"spaces. The first line is a header and is skipped. Existing entries are " +
			"overwritten. Without a file, piped standard input is read."),
		Example: `
prompter dict import tags.txt
prompter dict export | prompter dict import
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var r io.Reader
			switch {
			case len(args) == 1:
				f, err := os.Open(args[0])
				if err != nil {
					return handle(errs.UserInput(err, "dict: open import file"))
				}
				defer f.Close()
				r = f
			case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
				r = os.Stdin
			default:
				return handle(errs.WithHint(errs.ErrEmptySelection, "pass a file or pipe aligned text on stdin"))
			}
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			n, err := e.svc.ImportDictionary(ctx, r)
			if err != nil {
				return handle(err)
			}
			done("imported %d entries", n)
			return nil
		},
	}
}

func dictExport() *cobra.Command {
	file := ""
	cmd := &cobra.Command{
		Use:   "export [query]",
		Short: "Export entries as aligned text",
		Example: `
prompter dict export > tags.txt
prompter dict export scene -f scene.txt
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			text := e.svc.ExportDictionary(ctx, strings.Join(args, " "))
			if file == "" {
				_, err = io.WriteString(os.Stdout, text)
				return handle(err)
			}
			if err := os.WriteFile(file, []byte(text), 0o644); err != nil {
				return handle(errs.Wrap(err, "dict: write export file"))
			}
			done("wrote %s", file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to a file instead of stdout.")
	return cmd
}

func dictCategories() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List categories and how many tags use them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			cats := e.svc.Categories(ctx)
			if oo.JSON {
				return printJSON(cats)
			}
			pp := printers.PrettyPrint{}
			pp.Categories(cats)
			return nil
		},
	}
	base.AddOutputArg(cmd, oo)

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Declare a new category; refused while another category is unused",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			if err := e.svc.CreateCategory(ctx, args[0]); err != nil {
				return handle(err)
			}
			done("created category %s", args[0])
			return nil
		},
	}

	del := &cobra.Command{
		Use:               "delete <name>",
		Aliases:           []string{"rm"},
		Short:             "Forget a category; its tags become uncategorised",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: categoryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := open(ctx)
			if err != nil {
				return handle(err)
			}
			n, err := e.svc.DeleteCategory(ctx, args[0])
			if err != nil {
				return handle(err)
			}
			done("deleted category %s (%d tags uncategorised)", args[0], n)
			return nil
		},
	}

	cmd.AddCommand(create, del)
	return cmd
}
