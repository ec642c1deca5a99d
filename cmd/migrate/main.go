// Command migrate manages the database schema and demo data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Aqario database migration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}
	root.PersistentFlags().StringVar(&app.path, "path", "",
		"migrations directory; the migrations compiled into the binary are used when empty")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		upCmd(app),
		downCmd(app),
		stepsCmd(app),
		gotoCmd(app),
		versionCmd(app),
		forceCmd(app),
		createCmd(app),
		listCmd(app),
		seedCmd(app),
	)
	return root
}
