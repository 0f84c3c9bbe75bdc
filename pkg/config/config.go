package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultUsername is the account whose repositories are shown
	DefaultUsername = "latif-abdul"

	// DefaultTimeout bounds the repository request
	DefaultTimeout = 30 * time.Second

	// DefaultTitle is the heading of the generated page
	DefaultTitle = "Projects"

	// DefaultOutput is where the render command writes the page
	DefaultOutput = "index.html"

	portfolioSuffix = ".github.io"
)

// Config represents the repocards configuration
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Page   PageConfig   `yaml:"page"`
}

// GitHubConfig represents the repository source
type GitHubConfig struct {
	Username string        `yaml:"username"`
	Exclude  string        `yaml:"exclude,omitempty"`
	APIURL   string        `yaml:"api_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// PageConfig represents the generated page
type PageConfig struct {
	Title  string `yaml:"title,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Username: DefaultUsername,
			Timeout:  DefaultTimeout,
		},
		Page: PageConfig{
			Title:  DefaultTitle,
			Output: DefaultOutput,
		},
	}
}

// ExcludedRepository returns the name of the portfolio repository that is
// never shown. Unless configured it is "<username>.github.io".
func (g GitHubConfig) ExcludedRepository() string {
	if g.Exclude != "" {
		return g.Exclude
	}
	return g.Username + portfolioSuffix
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path. Fields missing
// from the file keep their defaults.
func LoadConfigFromPath(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // Return defaults if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.GitHub.Username == "" {
		c.GitHub.Username = DefaultUsername
	}
	if c.GitHub.Timeout == 0 {
		c.GitHub.Timeout = DefaultTimeout
	}
	if c.Page.Title == "" {
		c.Page.Title = DefaultTitle
	}
	if c.Page.Output == "" {
		c.Page.Output = DefaultOutput
	}
}

// SaveConfig saves configuration to the default location
func (c *Config) SaveConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveConfigToPath(configPath)
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".repocards", "config.yaml"), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GitHub.Username) == "" {
		return fmt.Errorf("GitHub username is required")
	}

	if strings.ContainsAny(c.GitHub.Username, "/ ") {
		return fmt.Errorf("GitHub username %q is not valid", c.GitHub.Username)
	}

	if c.GitHub.Timeout < 0 {
		return fmt.Errorf("GitHub timeout must not be negative")
	}

	if c.GitHub.APIURL != "" {
		parsed, err := url.Parse(c.GitHub.APIURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("GitHub API URL %q must be an absolute URL", c.GitHub.APIURL)
		}
	}

	return nil
}
