package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mongoflow",
		Short: "MongoFlow web shell",
		Long: `MongoFlow serves a server-rendered application shell: a header with
navigation, the view for the current path, and a footer.

Running mongoflow without a subcommand starts the server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newRoutesCmd())
	root.AddCommand(newVersionCmd())

	return root
}
