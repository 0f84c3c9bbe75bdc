package cmd

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repocards/pkg/portfolio"
	"repocards/pkg/render"
)

var (
	filterQuery    string
	filterLanguage string
	renderOutput   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the project cards as a static HTML page",
	Long: `Fetch the repositories and write a self-contained HTML page with the
project cards, a search box and a language selector.

--query and --language narrow the cards baked into the page and preset the
page's controls. Use --output - to write the page to stdout.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&filterQuery, "query", "q", "", "Only include repositories whose name or description contains this text")
	renderCmd.Flags().StringVarP(&filterLanguage, "language", "l", "", "Only include repositories with this primary language")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file, or - for stdout (default page.output from config)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	output := renderOutput
	if output == "" {
		output = cfg.Page.Output
	}

	var body bytes.Buffer
	criteria := portfolio.Criteria{Query: filterQuery, Language: filterLanguage}
	controller, err := newController(cfg, render.NewHTMLRenderer(&body), criteria)
	if err != nil {
		return err
	}

	loadErr := controller.Load(cmd.Context())

	page := render.Page{
		Title:     cfg.Page.Title,
		Username:  cfg.GitHub.Username,
		Query:     criteria.Query,
		Language:  criteria.Language,
		Languages: controller.Languages(),
		Body:      template.HTML(body.String()),
	}

	if err := writePage(cmd, output, page); err != nil {
		return err
	}

	if loadErr != nil {
		return fmt.Errorf("failed to load repositories: %w", loadErr)
	}

	if output != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %d of %d projects to %s\n",
			len(controller.Filtered()), len(controller.All()), output)
	}
	return nil
}

// writePage writes page to path, or to the command's stdout for "-"
func writePage(cmd *cobra.Command, path string, page render.Page) error {
	if path == "-" {
		return render.WritePage(cmd.OutOrStdout(), page)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := render.WritePage(f, page); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Debug("page written", zap.String("path", path))
	return nil
}
