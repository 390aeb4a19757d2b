package cmd

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/samwightt/dgx/pkg/schema"
	"github.com/spf13/cobra"
)

type fieldsOptions struct {
	required   bool
	nullable   bool
	directive  string
	name       string
	nameRegex  string
	hasComment bool
}

func attrToInfo(attr schema.Attribute) AttrInfo {
	return AttrInfo{
		Name:      attr.Name,
		Type:      attr.Type,
		Nullable:  attr.Nullable,
		Directive: attr.Directive,
		Comment:   attr.Comment,
	}
}

func formatAttrName(attr AttrInfo) string {
	if attr.ItemName != "" {
		return attr.ItemName + "." + attr.Name
	}
	return attr.Name
}

func formatAttrType(attr AttrInfo) string {
	typeStr := attr.Type
	if !attr.Nullable {
		typeStr += "!"
	}
	if attr.Directive != "" {
		typeStr += " @" + attr.Directive
	}
	return typeStr
}

func formatAttrText(attr AttrInfo) string {
	comment := ""
	if attr.Comment != "" {
		comment = " # " + attr.Comment
	}
	return fmt.Sprintf("%s: %s%s", formatAttrName(attr), formatAttrType(attr), comment)
}

func formatAttrsPretty(attrs []AttrInfo) string {
	t := makeTable()

	for _, attr := range attrs {
		t.Row(formatAttrName(attr), formatAttrType(attr), attr.Comment)
	}
	t.Headers("attribute", "type", "comment")

	return t.String()
}

// directiveName returns the directive's bare name, without arguments.
func directiveName(directive string) string {
	name, _, _ := strings.Cut(directive, "(")
	return strings.TrimSpace(name)
}

func matchesAttrFilters(attr schema.Attribute, opts *fieldsOptions) bool {
	if opts.required && attr.Nullable {
		return false
	}
	if opts.nullable && !attr.Nullable {
		return false
	}
	if opts.directive != "" && directiveName(attr.Directive) != opts.directive {
		return false
	}
	if opts.hasComment && attr.Comment == "" {
		return false
	}
	return true
}

func NewFieldsCmd() *cobra.Command {
	opts := &fieldsOptions{}

	cmd := &cobra.Command{
		Use:   "fields [item]",
		Short: "Lists attributes on a type/interface or across all of them",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			doc, err := loadDocument()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			outputNames := []string{}
			for _, item := range doc.Items() {
				if len(item.Attributes) == 0 {
					continue
				}
				if strings.Contains(strings.ToLower(item.Name), strings.ToLower(toComplete)) {
					outputNames = append(outputNames, item.Name)
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.MaximumNArgs(1),
		Long: `Lists attributes declared on types and interfaces in the schema.

If an item is specified, only attributes of that item are shown.
If no item is specified, attributes across all types and interfaces are shown.`,
		Example: `  # All attributes of Post
  dgx fields Post

  # Required attributes anywhere in the schema
  dgx fields --required

  # Attributes carrying a @search directive
  dgx fields --directive search

  # Attributes whose declaration had a trailing comment
  dgx fields --has-comment`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.required, "required", false, "Filter to only show required (non-null) attributes")
	cmd.Flags().BoolVar(&opts.nullable, "nullable", false, "Filter to only show nullable attributes")
	cmd.Flags().StringVar(&opts.directive, "directive", "", "Filter to attributes carrying the given directive (name only, e.g. search)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Filter attributes by name using a glob pattern (e.g., *Id, title*)")
	cmd.Flags().StringVar(&opts.nameRegex, "name-regex", "", "Filter attributes by name using a regex pattern")
	cmd.Flags().BoolVar(&opts.hasComment, "has-comment", false, "Filter to only show attributes that carry a trailing comment")

	return cmd
}

func runFields(cmd *cobra.Command, args []string, opts *fieldsOptions) error {
	if opts.required && opts.nullable {
		return fmt.Errorf("--required and --nullable cannot be used together")
	}

	var nameRegex *regexp.Regexp
	if opts.nameRegex != "" {
		var err error
		nameRegex, err = regexp.Compile(opts.nameRegex)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for --name-regex: %w", err)
		}
	}

	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	matchesName := func(attr schema.Attribute) bool {
		if opts.name != "" {
			matched, _ := filepath.Match(opts.name, attr.Name)
			if !matched {
				return false
			}
		}
		if nameRegex != nil && !nameRegex.MatchString(attr.Name) {
			return false
		}
		return true
	}

	var items []schema.Item
	if len(args) == 0 {
		items = append(items, doc.Types()...)
		items = append(items, doc.Interfaces()...)
	} else {
		itemName := args[0]
		if err := validateItemExists(doc, itemName, "item"); err != nil {
			return err
		}
		item, _ := doc.Lookup(itemName)
		if item.Kind != schema.KindType && item.Kind != schema.KindInterface {
			return fmt.Errorf("item '%s' is a %s and has no attributes", itemName, item.Kind)
		}
		items = append(items, item)
	}

	var attrs []AttrInfo
	for _, item := range items {
		for _, attr := range item.Attributes {
			if !matchesAttrFilters(attr, opts) || !matchesName(attr) {
				continue
			}
			info := attrToInfo(attr)
			if len(args) == 0 {
				info.ItemName = item.Name
			}
			attrs = append(attrs, info)
		}
	}

	renderer := render.Renderer[AttrInfo]{
		Data:         attrs,
		TextFormat:   formatAttrText,
		PrettyFormat: formatAttrsPretty,
		GQLFormat: func(attr AttrInfo) string {
			return schema.Attribute{
				Name:      attr.Name,
				Type:      attr.Type,
				Nullable:  attr.Nullable,
				Directive: attr.Directive,
			}.Text()
		},
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
