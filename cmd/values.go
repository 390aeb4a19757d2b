package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/samwightt/dgx/pkg/schema"
	"github.com/spf13/cobra"
)

func formatValueText(v ValueInfo) string {
	if v.EnumName != "" {
		return v.EnumName + "." + v.Name
	}
	return v.Name
}

func formatValuesPretty(values []ValueInfo) string {
	t := makeTable()

	for _, v := range values {
		t.Row(v.EnumName, v.Name)
	}
	t.Headers("enum", "value")

	return t.String()
}

func NewValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values [enum]",
		Short: "Lists options of an enum",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			doc, err := loadDocument()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			outputNames := []string{}
			for _, name := range doc.NamesByKind(schema.KindEnum) {
				if strings.Contains(strings.ToLower(name), strings.ToLower(toComplete)) {
					outputNames = append(outputNames, name)
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.MaximumNArgs(1),
		Long: `Lists the options of an enum, in declared order.

If an enum is specified, only options of that enum are shown.
If no enum is specified, options of every enum are shown.`,
		RunE: runValues,
	}

	return cmd
}

func runValues(cmd *cobra.Command, args []string) error {
	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	var enums []schema.Item
	if len(args) == 0 {
		enums = doc.Enums()
	} else {
		enumName := args[0]
		if err := validateItemExists(doc, enumName, "enum"); err != nil {
			return err
		}
		item, _ := doc.Lookup(enumName)
		if item.Kind != schema.KindEnum {
			return fmt.Errorf("item '%s' is a %s, not an enum", enumName, item.Kind)
		}
		enums = append(enums, item)
	}

	var values []ValueInfo
	for _, enum := range enums {
		for _, option := range enum.Options {
			value := ValueInfo{Name: option}
			if len(args) == 0 {
				value.EnumName = enum.Name
			}
			values = append(values, value)
		}
	}

	renderer := render.Renderer[ValueInfo]{
		Data:         values,
		TextFormat:   formatValueText,
		PrettyFormat: formatValuesPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
