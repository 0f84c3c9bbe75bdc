package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repocards/pkg/portfolio"
	"repocards/pkg/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the project cards in the terminal",
	Long: `Fetch the repositories and print them as cards, most recently updated
first. --query matches names and descriptions case-insensitively and
--language keeps one primary language.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&filterQuery, "query", "q", "", "Only show repositories whose name or description contains this text")
	listCmd.Flags().StringVarP(&filterLanguage, "language", "l", "", "Only show repositories with this primary language")
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	criteria := portfolio.Criteria{Query: filterQuery, Language: filterLanguage}
	controller, err := newController(cfg, render.NewTerminalRenderer(cmd.OutOrStdout()), criteria)
	if err != nil {
		return err
	}

	if err := controller.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load repositories: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "📦 %d of %d repositories of %s\n",
		len(controller.Filtered()), len(controller.All()), cfg.GitHub.Username)
	return nil
}
