package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/quickpost/publisher/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the publishctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "publishctl",
		Short: "Publish posts to the configured GitHub repository",
		Long: `publishctl renders a title and body the same way the /upload endpoint does
and commits the result through the GitHub Contents API. Settings come from the
same environment variables (and .env file) as the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(os.Getenv("LOG_LEVEL"))
		},
	}
	root.AddCommand(newPublishCmd())
	root.AddCommand(newPathCmd())
	return root
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func printPaths(cmd *cobra.Command, paths []string) {
	cyan := color.New(color.FgCyan)
	for _, p := range paths {
		cyan.Fprintln(cmd.OutOrStdout(), "  "+p)
	}
}
