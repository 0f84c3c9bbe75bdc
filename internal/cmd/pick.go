package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"repocards/internal/browser"
	"repocards/pkg/fuzzy"
	"repocards/pkg/github"
	"repocards/pkg/portfolio"
	"repocards/pkg/render"
)

var pickPrint bool

var (
	// newSelector picks fzf on an interactive terminal and the line-based
	// finder otherwise. Tests replace it.
	newSelector = defaultSelector

	opener browser.Opener = browser.NewOpener()
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-select a repository and open it in the browser",
	Long: `Fetch the repositories, select one with fzf and open its GitHub page.
Without an interactive terminal a numbered list is shown instead.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&filterQuery, "query", "q", "", "Only offer repositories whose name or description contains this text")
	pickCmd.Flags().StringVarP(&filterLanguage, "language", "l", "", "Only offer repositories with this primary language")
	pickCmd.Flags().BoolVar(&pickPrint, "print", false, "Print the repository URL instead of opening it")
}

func defaultSelector(cmd *cobra.Command) fuzzy.Selector {
	fallback := fuzzy.New("Select a project:", cmd.InOrStdin(), cmd.ErrOrStderr())
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return fuzzy.NewFzf("Select a project:", fallback)
	}
	return fallback
}

func runPick(cmd *cobra.Command, _ []string) error {
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

	repos = portfolio.Filter(repos, filterQuery, filterLanguage)
	if len(repos) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), render.NoResults)
		return nil
	}

	byName := make(map[string]github.Repository, len(repos))
	options := make([]fuzzy.Option, 0, len(repos))
	for _, repo := range repos {
		byName[repo.Name] = repo
		options = append(options, fuzzy.Option{
			Value:       repo.Name,
			Description: render.Sanitize(repo.DescriptionOr("")),
		})
	}

	selector := newSelector(cmd)
	if err := selector.SetOptions(options); err != nil {
		return fmt.Errorf("failed to set options: %w", err)
	}

	name, err := selector.Select()
	if errors.Is(err, fuzzy.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Selection cancelled.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to select repository: %w", err)
	}

	repo, ok := byName[name]
	if !ok {
		return fmt.Errorf("unknown repository %q", name)
	}
	logger.Debug("repository selected", zap.String("name", repo.Name), zap.String("url", repo.URL))

	if pickPrint {
		fmt.Fprintln(cmd.OutOrStdout(), repo.URL)
		return nil
	}

	if err := opener.Open(repo.URL); err != nil {
		return fmt.Errorf("failed to open %s: %w", repo.Name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "🌐 Opened %s\n", repo.URL)
	return nil
}
