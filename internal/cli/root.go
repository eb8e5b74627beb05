package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "eventflow" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eventflow",
		Short: "Event planning assistant API",
	}

	root.AddCommand(
		newServeCmd(),
	)

	return root
}
