package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/spf13/cobra"
)

type referencesOptions struct {
	kind   string
	inItem string
}

func formatReferenceText(ref ReferenceInfo) string {
	return fmt.Sprintf("%s: %s", ref.Location, ref.Type)
}

func formatReferencesPretty(refs []ReferenceInfo) string {
	t := makeTable()

	for _, ref := range refs {
		t.Row(ref.Location, ref.Kind, ref.Type)
	}
	t.Headers("location", "kind", "type")

	return t.String()
}

func NewReferencesCmd() *cobra.Command {
	opts := &referencesOptions{}

	cmd := &cobra.Command{
		Use:   "references <type>",
		Short: "Shows where a type is used in the schema",
		Long: `Shows where a given type is used in the schema - which attributes take it
as their type and which unions list it as a member.

This is useful for understanding the impact of changes to a type, finding
all entry points to a type, or exploring the schema structure.`,
		Example: `  # Find all references to the Post type
  dgx references Post

  # Only attributes whose type is Post
  dgx references Post --kind attribute

  # Only unions that cover Post
  dgx references Post --kind member

  # References to Post only within the Author type
  dgx references Post --in Author

  # JSON output for scripting
  dgx references Post -f json`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			doc, err := loadDocument()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			outputNames := []string{}
			for _, name := range doc.Names() {
				if strings.Contains(strings.ToLower(name), strings.ToLower(toComplete)) {
					outputNames = append(outputNames, name)
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReferences(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "Filter by reference kind: 'attribute' or 'member'")
	cmd.Flags().StringVar(&opts.inItem, "in", "", "Only show references from the specified item")

	return cmd
}

func runReferences(cmd *cobra.Command, args []string, opts *referencesOptions) error {
	targetType := args[0]

	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	if err := validateItemExists(doc, targetType, "type"); err != nil {
		return err
	}

	if opts.inItem != "" {
		if err := validateItemExists(doc, opts.inItem, "item"); err != nil {
			return err
		}
	}

	if opts.kind != "" && opts.kind != "attribute" && opts.kind != "member" {
		return fmt.Errorf("--kind must be 'attribute' or 'member', got '%s'", opts.kind)
	}

	var refs []ReferenceInfo

	for _, item := range doc.Items() {
		if opts.inItem != "" && item.Name != opts.inItem {
			continue
		}

		for _, attr := range item.Attributes {
			if baseTypeName(attr.Type) != targetType {
				continue
			}
			if opts.kind == "" || opts.kind == "attribute" {
				typeStr := attr.Type
				if !attr.Nullable {
					typeStr += "!"
				}
				refs = append(refs, ReferenceInfo{
					Location: item.Name + "." + attr.Name,
					Kind:     "attribute",
					Type:     typeStr,
				})
			}
		}

		for _, member := range item.Members {
			if member != targetType {
				continue
			}
			if opts.kind == "" || opts.kind == "member" {
				refs = append(refs, ReferenceInfo{
					Location: item.Name,
					Kind:     "member",
					Type:     member,
				})
			}
		}
	}

	if len(refs) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No references found.")
	}

	renderer := render.Renderer[ReferenceInfo]{
		Data:         refs,
		TextFormat:   formatReferenceText,
		PrettyFormat: formatReferencesPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
