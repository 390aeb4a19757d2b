package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samwightt/dgx/pkg/client"
	"github.com/samwightt/dgx/pkg/operation"
)

type execOptions struct {
	mutation bool
	fields   []string
	args     []string
	listArgs []string
	dryRun   bool
}

// buildExecArgs turns --arg and --list-arg flag values into an argument
// tree. Keys may be dotted paths; "filter.title.anyofterms=GraphQL"
// nests two levels deep. Flag order is preserved in the wire text.
func buildExecArgs(opts *execOptions) (*operation.Args, error) {
	if len(opts.args) == 0 && len(opts.listArgs) == 0 {
		return nil, nil
	}

	root := operation.NewArgs()

	place := func(key string) (*operation.Args, string, error) {
		parts := strings.Split(key, ".")
		current := root
		for _, part := range parts[:len(parts)-1] {
			existing, ok := current.Get(part)
			if !ok {
				nested := operation.NewArgs()
				current.Set(part, nested)
				current = nested
				continue
			}
			nested, ok := existing.(*operation.Args)
			if !ok {
				return nil, "", fmt.Errorf("argument '%s' is already set to a plain value", part)
			}
			current = nested
		}
		return current, parts[len(parts)-1], nil
	}

	for _, raw := range opts.args {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("--arg must be key=value, got '%s'", raw)
		}
		target, leaf, err := place(key)
		if err != nil {
			return nil, err
		}
		target.Set(leaf, value)
	}

	for _, raw := range opts.listArgs {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("--list-arg must be key=elem,elem..., got '%s'", raw)
		}
		target, leaf, err := place(key)
		if err != nil {
			return nil, err
		}
		target.Set(leaf, strings.Split(value, ","))
	}

	return root, nil
}

func NewExecCmd() *cobra.Command {
	opts := &execOptions{}

	cmd := &cobra.Command{
		Use:   "exec <name>",
		Short: "Builds a query or mutation and posts it to a server",
		Long: `Builds a GraphQL operation from flags and posts it to the server's
/graphql endpoint, printing the response data as JSON.

Query names must start with aggregate, get or query; mutation names (with
--mutation) must start with add, delete or update. Those are the prefixes
Dgraph generates, so anything else is rejected before it goes on the wire.

Argument values are strings quoted into the wire text, except under the
key 'has', which Dgraph treats as a bareword predicate name. Dotted keys
nest: --arg filter.title.anyofterms=GraphQL becomes
(filter: {title: {anyofterms: "GraphQL"}}). --list-arg elements are
passed through verbatim, so quote them yourself.

With --dry-run the operation text is printed instead of being sent.`,
		Example: `  # Query posts matching a term
  dgx exec queryPost --server http://localhost:8080 \
      --arg filter.title.anyofterms=GraphQL --field title --field url

  # Only show what would be sent
  dgx exec queryPost --arg has=title --field title --dry-run

  # Run a mutation
  dgx exec addPost --mutation --server http://localhost:8080 \
      --list-arg 'input={title: "Hi"}' --field 'post {title}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.mutation, "mutation", false, "Build a mutation instead of a query")
	cmd.Flags().StringArrayVar(&opts.fields, "field", nil, "Return field selection (repeatable)")
	cmd.Flags().StringArrayVar(&opts.args, "arg", nil, "Operation argument as key=value; dotted keys nest (repeatable)")
	cmd.Flags().StringArrayVar(&opts.listArgs, "list-arg", nil, "List argument as key=elem,elem with preformatted elements (repeatable)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the operation text instead of sending it")

	return cmd
}

func runExec(cmd *cobra.Command, args []string, opts *execOptions) error {
	name := args[0]

	if len(opts.fields) == 0 {
		return fmt.Errorf("at least one --field is required")
	}

	opArgs, err := buildExecArgs(opts)
	if err != nil {
		return err
	}

	build := operation.NewQuery
	if opts.mutation {
		build = operation.NewMutation
	}
	op, err := build(name, opts.fields, opArgs)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), op.Text())
		return nil
	}

	if serverURL == "" {
		return fmt.Errorf("--server is required unless --dry-run is set")
	}

	c := client.New(serverURL, nil).WithLogger(log.Logger)
	data, err := c.Execute(context.Background(), client.GraphQL, op, authHeaders())
	if err != nil {
		return err
	}

	var pretty json.RawMessage = data
	indented, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(indented))
	return nil
}
