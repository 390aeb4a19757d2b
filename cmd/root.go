package cmd

import (
	"bytes"
	"os"

	"github.com/samwightt/dgx/pkg/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	schemaFilePath string
	serverURL      string
	useGenerated   bool
	outputFormat   render.Format
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dgx",
		Short: "Explore Dgraph GraphQL admin schemas by structure, not just text",
		Long: `dgx is a tool for exploring the GraphQL schema a Dgraph server is running.
It parses the loosely structured document returned by the admin endpoint's
getGQLSchema query (or a local copy of it) into types, interfaces, enums and
unions, and lets you explore them: which attributes a type has, which types
reference another, whether a field is required, what a union covers.

The schema can come from a local file (-s) or straight from a running server
(--server). With --server, --generated asks for the combined generatedSchema
document, which also carries the server's generated artifact segments.

Output can be formatted as pretty tables (default in terminals), plain text
(default when piping), JSON for integration with other tools, or gql to
re-emit matching declarations as schema text.`,
		Example: `  # List all items in a schema file
  dgx types -s schema.graphql

  # Pull the live schema from a server and list its enums
  dgx types --server http://localhost:8080 --kind enum

  # Find required attributes that carry a @search directive
  dgx fields --required --directive search

  # Which types reach Comment through Post?
  dgx paths Comment --through Post

  # Build a query and send it
  dgx exec queryPost --arg filter.title.anyofterms=GraphQL --field title

  # Pipe JSON output to other tools
  dgx types -f json | jq '.[].name'`,
	}

	// Persistent flags
	cmd.PersistentFlags().StringVarP(&schemaFilePath, "schema", "s", "schema.graphql", "File path of a schema document")
	cmd.PersistentFlags().StringVar(&serverURL, "server", "", "Base URL of a Dgraph server to pull the schema from (overrides -s)")
	cmd.PersistentFlags().BoolVar(&useGenerated, "generated", false, "With --server, request the combined generatedSchema document")

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty, gql (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		return err
	}

	// Add all subcommands
	cmd.AddCommand(NewTypesCmd())
	cmd.AddCommand(NewFieldsCmd())
	cmd.AddCommand(NewValuesCmd())
	cmd.AddCommand(NewMembersCmd())
	cmd.AddCommand(NewReferencesCmd())
	cmd.AddCommand(NewPathsCmd())
	cmd.AddCommand(NewSegmentsCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewExecCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
