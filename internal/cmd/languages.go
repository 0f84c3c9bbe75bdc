package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repocards/pkg/portfolio"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Print the distinct primary languages of the repositories",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	repos, err := portfolio.Load(cmd.Context(), client, cfg.GitHub.Username, cfg.GitHub.ExcludedRepository())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", portfolio.UserMessage(err))
		return fmt.Errorf("failed to load repositories: %w", err)
	}

	for _, language := range portfolio.DistinctLanguages(repos) {
		fmt.Fprintln(cmd.OutOrStdout(), language)
	}
	return nil
}
