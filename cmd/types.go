package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/samwightt/dgx/pkg/schema"
	"github.com/spf13/cobra"
)

type typesOptions struct {
	kindFilter     []string
	hasFieldFilter []string
}

var validKinds = map[string]schema.ItemKind{
	"type":      schema.KindType,
	"interface": schema.KindInterface,
	"enum":      schema.KindEnum,
	"union":     schema.KindUnion,
}

func itemToInfo(item schema.Item) ItemInfo {
	return ItemInfo{
		Name:       item.Name,
		Kind:       string(item.Kind),
		Attributes: len(item.Attributes),
		Options:    item.Options,
		Members:    item.Members,
	}
}

func formatItemText(t ItemInfo) string {
	return fmt.Sprintf("%s %s", t.Kind, t.Name)
}

func formatItemsPretty(items []ItemInfo) string {
	tbl := makeTable()

	for _, t := range items {
		detail := ""
		switch {
		case len(t.Options) > 0:
			detail = strings.Join(t.Options, ", ")
		case len(t.Members) > 0:
			detail = strings.Join(t.Members, " | ")
		case t.Attributes > 0:
			detail = strconv.Itoa(t.Attributes) + " attributes"
		}
		tbl.Row(t.Kind, t.Name, detail)
	}
	tbl.Headers("kind", "name", "detail")

	return tbl.String()
}

func matchesKindFilter(item schema.Item, kindFilter []string) bool {
	if len(kindFilter) == 0 {
		return true
	}
	for _, k := range kindFilter {
		if expectedKind, ok := validKinds[strings.ToLower(k)]; ok {
			if item.Kind == expectedKind {
				return true
			}
		}
	}
	return false
}

func matchesHasFieldFilter(item schema.Item, hasFieldFilter []string) bool {
	for _, fieldName := range hasFieldFilter {
		found := false
		for _, attr := range item.Attributes {
			if attr.Name == fieldName {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func NewTypesCmd() *cobra.Command {
	opts := &typesOptions{}

	cmd := &cobra.Command{
		Use:   "types",
		Short: "Lists the top-level items in the schema",
		Long: `Lists the top-level items (types, interfaces, enums, unions) parsed from
the schema document, in parse order.

Union declarations always sort after every brace-delimited item, whatever
their position in the source text. That is how the chunker has always
ordered them and downstream tooling may depend on it.`,
		Example: `  # List everything
  dgx types

  # Only enums and unions
  dgx types --kind enum --kind union

  # Types that declare a title attribute
  dgx types --has-field title

  # Re-emit matching declarations as schema text
  dgx types --kind union -f gql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.kindFilter, "kind", nil, "Filter by item kind: type, interface, enum, union (repeatable)")
	cmd.Flags().StringSliceVar(&opts.hasFieldFilter, "has-field", nil, "Filter to items declaring all the given attributes (repeatable)")

	return cmd
}

func runTypes(cmd *cobra.Command, opts *typesOptions) error {
	for _, k := range opts.kindFilter {
		if _, ok := validKinds[strings.ToLower(k)]; !ok {
			candidates := make([]string, 0, len(validKinds))
			for name := range validKinds {
				candidates = append(candidates, name)
			}
			sort.Strings(candidates)
			return fmt.Errorf("invalid kind '%s' (valid: %s)", k, strings.Join(candidates, ", "))
		}
	}

	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	matched := filterSlice(doc.Items(), func(item schema.Item) bool {
		return matchesKindFilter(item, opts.kindFilter) && matchesHasFieldFilter(item, opts.hasFieldFilter)
	})

	var infos []ItemInfo
	gqlTexts := make(map[string]string, len(matched))
	for _, item := range matched {
		infos = append(infos, itemToInfo(item))
		gqlTexts[item.Name] = item.Text()
	}

	renderer := render.Renderer[ItemInfo]{
		Data:         infos,
		TextFormat:   formatItemText,
		PrettyFormat: formatItemsPretty,
		GQLFormat: func(t ItemInfo) string {
			return gqlTexts[t.Name] + "\n"
		},
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
