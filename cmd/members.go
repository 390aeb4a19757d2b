package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/samwightt/dgx/pkg/schema"
	"github.com/spf13/cobra"
)

func formatMemberText(m MemberInfo) string {
	if m.UnionName != "" {
		return m.UnionName + "." + m.Name
	}
	return m.Name
}

func formatMembersPretty(members []MemberInfo) string {
	t := makeTable()

	for _, m := range members {
		t.Row(m.UnionName, m.Name)
	}
	t.Headers("union", "member")

	return t.String()
}

func NewMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members [union]",
		Short: "Lists member types of a union",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			doc, err := loadDocument()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			outputNames := []string{}
			for _, name := range doc.NamesByKind(schema.KindUnion) {
				if strings.Contains(strings.ToLower(name), strings.ToLower(toComplete)) {
					outputNames = append(outputNames, name)
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.MaximumNArgs(1),
		Long: `Lists the member types of a union, in declared order.

If a union is specified, only members of that union are shown.
If no union is specified, members of every union are shown.`,
		RunE: runMembers,
	}

	return cmd
}

func runMembers(cmd *cobra.Command, args []string) error {
	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	var unions []schema.Item
	if len(args) == 0 {
		unions = doc.Unions()
	} else {
		unionName := args[0]
		if err := validateItemExists(doc, unionName, "union"); err != nil {
			return err
		}
		item, _ := doc.Lookup(unionName)
		if item.Kind != schema.KindUnion {
			return fmt.Errorf("item '%s' is a %s, not a union", unionName, item.Kind)
		}
		unions = append(unions, item)
	}

	var members []MemberInfo
	for _, union := range unions {
		for _, member := range union.Members {
			info := MemberInfo{Name: member}
			if len(args) == 0 {
				info.UnionName = union.Name
			}
			members = append(members, info)
		}
	}

	renderer := render.Renderer[MemberInfo]{
		Data:         members,
		TextFormat:   formatMemberText,
		PrettyFormat: formatMembersPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
