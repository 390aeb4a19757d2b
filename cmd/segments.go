package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/samwightt/dgx/pkg/schema"
	"github.com/spf13/cobra"
)

type namedSegment struct {
	name string
	text string
}

// segmentList flattens the segments struct in positional order. The
// names match the fields of the generatedSchema response layout.
func segmentList(segs schema.Segments) []namedSegment {
	return []namedSegment{
		{"inputSchema", segs.InputSchema},
		{"extendedDefinitions", segs.ExtendedDefinitions},
		{"generatedTypes", segs.GeneratedTypes},
		{"generatedEnums", segs.GeneratedEnums},
		{"generatedInputs", segs.GeneratedInputs},
		{"generatedQuery", segs.GeneratedQuery},
		{"generatedMutations", segs.GeneratedMutations},
	}
}

func formatSegmentText(s SegmentInfo) string {
	if !s.Present {
		return s.Name + " (not present)"
	}
	return fmt.Sprintf("%s: %d lines", s.Name, s.Lines)
}

func formatSegmentsPretty(segments []SegmentInfo) string {
	t := makeTable()

	for _, s := range segments {
		lines := ""
		if s.Present {
			lines = fmt.Sprintf("%d", s.Lines)
		}
		t.Row(s.Name, lines)
	}
	t.Headers("segment", "lines")

	return t.String()
}

func NewSegmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments [name]",
		Short: "Lists the named segments of a generated schema document",
		Long: `Lists the named segments of a combined generatedSchema document: the raw
input schema plus the server's generated artifacts, delimited by a fixed
separator line of 23 '#' characters.

The mapping from document pieces to segment names is positional - the
server emits segments in a fixed order and dgx assigns them by position,
not by reading the banner text. A plain schema document has no separator;
it is treated as one big inputSchema segment.

With a segment name as argument, the raw text of that segment is printed
instead.`,
		Example: `  # Segment overview of a live generated schema
  dgx segments --server http://localhost:8080 --generated

  # Print the generated mutations
  dgx segments generatedMutations --server http://localhost:8080 --generated`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := []string{}
			for _, seg := range segmentList(schema.Segments{}) {
				if strings.Contains(strings.ToLower(seg.name), strings.ToLower(toComplete)) {
					names = append(names, seg.name)
				}
			}
			sort.Strings(names)
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: runSegments,
	}

	return cmd
}

func runSegments(cmd *cobra.Command, args []string) error {
	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	segments := segmentList(doc.Segments())

	if len(args) == 1 {
		for _, seg := range segments {
			if seg.name != args[0] {
				continue
			}
			if seg.text == "" {
				return fmt.Errorf("segment '%s' is not present in this document", seg.name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), seg.text)
			return nil
		}
		if suggestion := findClosest(args[0], pluck(segments, func(s namedSegment) string { return s.name })); suggestion != "" {
			return fmt.Errorf("unknown segment '%s', did you mean '%s'?", args[0], suggestion)
		}
		return fmt.Errorf("unknown segment '%s'", args[0])
	}

	var infos []SegmentInfo
	for _, seg := range segments {
		info := SegmentInfo{Name: seg.name, Present: seg.text != ""}
		if info.Present {
			info.Lines = len(strings.Split(seg.text, "\n"))
		}
		infos = append(infos, info)
	}

	renderer := render.Renderer[SegmentInfo]{
		Data:         infos,
		TextFormat:   formatSegmentText,
		PrettyFormat: formatSegmentsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
