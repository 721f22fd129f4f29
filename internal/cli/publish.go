package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/quickpost/publisher/internal/config"
	"github.com/quickpost/publisher/internal/github"
	"github.com/quickpost/publisher/internal/publish"
	"github.com/spf13/cobra"
)

type publishFlags struct {
	title    string
	content  string
	file     string
	scheme   string
	markdown bool
}

func newPublishCmd() *cobra.Command {
	var f publishFlags
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render and commit one post",
		Long: `Render a post and commit it to the configured repository.

The body is taken from --content, or from --file (use "-" for stdin).`,
		Example: `  publishctl publish --title "Hello" --content "first line"
  publishctl publish --title "Notes" --file notes.txt --markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "post title")
	cmd.Flags().StringVarP(&f.content, "content", "c", "", "post body")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", `read the body from a file ("-" for stdin)`)
	cmd.Flags().StringVar(&f.scheme, "scheme", "", "path scheme: dated, yearly or slug (default from PUBLISH_PATH_SCHEME)")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "also commit the Markdown source")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	return cmd
}

func runPublish(cmd *cobra.Command, f publishFlags) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.GitHub.Validate(); err != nil {
		return err
	}

	content := f.content
	if f.file != "" {
		content, err = readBody(cmd.InOrStdin(), f.file)
		if err != nil {
			return err
		}
	}

	schemeName := cfg.Publish.PathScheme
	if f.scheme != "" {
		schemeName = f.scheme
	}
	scheme, err := publish.ParseScheme(schemeName)
	if err != nil {
		return err
	}

	client := github.NewClient(github.Options{
		APIURL:    cfg.GitHub.APIURL,
		Repo:      cfg.GitHub.Repo,
		Token:     cfg.GitHub.Token,
		Branch:    cfg.GitHub.Branch,
		UserAgent: cfg.GitHub.UserAgent,
		Timeout:   cfg.GitHub.Timeout,
	})
	pub := publish.New(client, publish.Options{
		Scheme:        scheme,
		TZOffset:      cfg.Publish.TZOffset,
		WriteMarkdown: cfg.Publish.WriteMarkdown || f.markdown,
		Render:        publish.RenderOptions{Raw: cfg.Publish.UnsafeRawHTML},
	})

	out := pub.Publish(cmd.Context(), f.title, content)
	switch out.Kind {
	case publish.KindOK:
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Published to %s\n", client.Repo())
		printPaths(cmd, out.Files)
		if cfg.Publish.BaseURL != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\n", cfg.Publish.BaseURL, out.Path)
		}
		return nil
	case publish.KindInvalid:
		return out.Err
	default:
		if out.Err != nil {
			return out.Err
		}
		return errors.New(out.Detail)
	}
}

func readBody(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}
