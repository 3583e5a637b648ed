package cmd

import (
	"github.com/spf13/cobra"

	"ifbound.dev/pkg/ifbound/internal/domain"
	m "ifbound.dev/pkg/ifbound/internal/model"
)

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the branches of a source file",
		Long: `Browse the branches of a source file interactively. When the output is
not a terminal every branch is printed with its source lines instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Browse(cmd.Context(), domain.BrowseArgs{Path: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
