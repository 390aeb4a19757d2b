package cmd

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/samwightt/dgx/pkg/schema"
	"github.com/spf13/cobra"
)

type pathsOptions struct {
	maxDepth     int
	fromItem     string
	shortestOnly bool
	throughItem  string
}

type pathStep struct {
	itemName string
	attrName string
}

func formatPathStep(step pathStep) string {
	return fmt.Sprintf("%s.%s", step.itemName, step.attrName)
}

func formatPath(steps []pathStep, targetType string) string {
	if len(steps) == 0 {
		return targetType
	}

	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = formatPathStep(step)
	}

	return strings.Join(parts, " -> ") + " -> " + targetType
}

func formatPathText(p PathInfo) string {
	return p.Path
}

func formatPathsPretty(paths []PathInfo) string {
	t := makeTable()

	for _, p := range paths {
		t.Row(p.Path)
	}
	t.Headers("path")

	return t.String()
}

// findPaths walks the attribute-type graph breadth first. An edge runs
// from a type or interface to the base type of each of its attributes.
func findPaths(doc *schema.Document, fromItem string, targetType string, maxDepth int) []PathInfo {
	var results []PathInfo

	if _, ok := doc.Lookup(fromItem); !ok {
		return results
	}

	type searchState struct {
		current string
		steps   []pathStep
		visited map[string]bool
	}

	queue := []searchState{{
		current: fromItem,
		steps:   []pathStep{},
		visited: map[string]bool{fromItem: true},
	}}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		if len(state.steps) > maxDepth {
			continue
		}

		item, ok := doc.Lookup(state.current)
		if !ok {
			continue
		}

		for _, attr := range item.Attributes {
			attrType := baseTypeName(attr.Type)

			newSteps := make([]pathStep, len(state.steps)+1)
			copy(newSteps, state.steps)
			newSteps[len(state.steps)] = pathStep{itemName: state.current, attrName: attr.Name}

			if attrType == targetType {
				results = append(results, PathInfo{
					Path: formatPath(newSteps, targetType),
				})
			}

			if !state.visited[attrType] && len(newSteps) < maxDepth {
				next, ok := doc.Lookup(attrType)
				// Only object-like items can be traversed further.
				if ok && (next.Kind == schema.KindType || next.Kind == schema.KindInterface) && len(next.Attributes) > 0 {
					newVisited := make(map[string]bool)
					maps.Copy(newVisited, state.visited)
					newVisited[attrType] = true

					queue = append(queue, searchState{
						current: attrType,
						steps:   newSteps,
						visited: newVisited,
					})
				}
			}
		}
	}

	// Sort results for consistent output
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results
}

func NewPathsCmd() *cobra.Command {
	opts := &pathsOptions{}

	cmd := &cobra.Command{
		Use:   "paths <type>",
		Short: "Lists attribute paths that reach a given type",
		Args:  cobra.ExactArgs(1),
		Long: `Lists the attribute paths through which a given type can be reached from
another item in the schema.

By default, every type and interface is tried as a starting point. Use
--from to start from a single item, --shortest to only show the shortest
path(s), and --through to keep only paths passing through a given item.

For example, if Comment hangs off Post.comments and Post hangs off
Author.posts, "dgx paths Comment --from Author" shows
Author.posts -> Post.comments -> Comment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 5, "Maximum depth to search for paths")
	cmd.Flags().StringVar(&opts.fromItem, "from", "", "Item to start searching from (default: every type and interface)")
	cmd.Flags().BoolVar(&opts.shortestOnly, "shortest", false, "Only show the shortest path(s)")
	cmd.Flags().StringVar(&opts.throughItem, "through", "", "Only show paths that pass through the given item")

	return cmd
}

func runPaths(cmd *cobra.Command, args []string, opts *pathsOptions) error {
	targetType := args[0]

	doc, err := loadCliDocument()
	if err != nil {
		return err
	}

	if err := validateItemExists(doc, targetType, "type"); err != nil {
		return err
	}
	if opts.fromItem != "" {
		if err := validateItemExists(doc, opts.fromItem, "item"); err != nil {
			return err
		}
	}
	if opts.throughItem != "" {
		if err := validateItemExists(doc, opts.throughItem, "item"); err != nil {
			return err
		}
	}

	var froms []string
	if opts.fromItem != "" {
		froms = []string{opts.fromItem}
	} else {
		froms = append(froms, doc.NamesByKind(schema.KindType)...)
		froms = append(froms, doc.NamesByKind(schema.KindInterface)...)
	}

	seen := make(map[string]bool)
	var paths []PathInfo
	for _, from := range froms {
		for _, p := range findPaths(doc, from, targetType, opts.maxDepth) {
			if !seen[p.Path] {
				seen[p.Path] = true
				paths = append(paths, p)
			}
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Path < paths[j].Path
	})

	if opts.throughItem != "" {
		paths = filterSlice(paths, func(p PathInfo) bool {
			return strings.Contains(p.Path, opts.throughItem+".")
		})
	}

	if opts.shortestOnly && len(paths) > 0 {
		minDepth := -1
		for _, p := range paths {
			depth := len(strings.Split(p.Path, " -> "))
			if minDepth == -1 || depth < minDepth {
				minDepth = depth
			}
		}
		paths = filterSlice(paths, func(p PathInfo) bool {
			return len(strings.Split(p.Path, " -> ")) == minDepth
		})
	}

	renderer := render.Renderer[PathInfo]{
		Data:         paths,
		TextFormat:   formatPathText,
		PrettyFormat: formatPathsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
