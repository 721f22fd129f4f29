package cli

import (
	"time"

	"github.com/quickpost/publisher/internal/config"
	"github.com/quickpost/publisher/internal/publish"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	var (
		title    string
		scheme   string
		markdown bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show where a post would be written right now",
		Long:  `Print the repository paths a post would be committed to, without contacting GitHub.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if scheme == "" {
				scheme = cfg.Publish.PathScheme
			}
			s, err := publish.ParseScheme(scheme)
			if err != nil {
				return err
			}
			layout := publish.BuildLayout(s, publish.NewStamp(time.Now(), cfg.Publish.TZOffset),
				title, cfg.Publish.WriteMarkdown || markdown)
			printPaths(cmd, layout.Files())
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "post title (used by the slug scheme)")
	cmd.Flags().StringVar(&scheme, "scheme", "", "path scheme: dated, yearly or slug")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "include the Markdown source path")
	return cmd
}
