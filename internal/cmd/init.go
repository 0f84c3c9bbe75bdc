package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"repocards/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize repocards configuration",
	Long:  "Create a default configuration file for repocards",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file without asking")
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(out, "⚠️  Configuration file already exists at: %s\n", path)
		fmt.Fprint(out, "Do you want to overwrite it? (y/N): ")
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Configuration initialization cancelled.")
			return nil
		}
	}

	defaultConfig := config.Default()
	if username != "" {
		defaultConfig.GitHub.Username = username
	}
	if excludeName != "" {
		defaultConfig.GitHub.Exclude = excludeName
	}
	if apiURL != "" {
		defaultConfig.GitHub.APIURL = apiURL
	}

	if err := defaultConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	save := func() error { return defaultConfig.SaveConfigToPath(path) }
	if configPath == "" {
		save = defaultConfig.SaveConfig
	}
	if err := save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(out, "✅ Configuration file created at: %s\n", path)
	fmt.Fprintln(out, "📝 Edit github.username to show your own repositories.")

	return nil
}
