// Package cfg loads the forktracker configuration.
// Settings are read from a toml file, environment variables overlay
// the file values so the tool can run in CI environments without a
// config file.
package cfg

import (
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
)

type Config struct {
	Repository           string `toml:"repository"`
	BaseBranch           string `toml:"base_branch"`
	GithubAPIToken       string `toml:"github_api_token"`
	ExcludedRepositories string `toml:"excluded_repositories"`
	LogFormat            string `toml:"log_format"`
	LogTimeKey           string `toml:"log_time_key"`
	LogLevel             string `toml:"log_level"`
}

// Default returns a configuration with all defaults applied and no
// file values.
func Default() *Config {
	var result Config
	result.applyDefaults()

	return &result
}

func Load(reader io.Reader) (*Config, error) {
	var result Config

	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	result.applyDefaults()

	return &result, nil
}

func (c *Config) Marshal(writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(c)
}

func (c *Config) applyDefaults() {
	if c.BaseBranch == "" {
		c.BaseBranch = "main"
	}

	if c.LogFormat == "" {
		c.LogFormat = "logfmt"
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ApplyEnv overlays environment variables over the file configuration.
// A .env file in the working directory is loaded into the environment
// first, when one exists.
// The generic CI variables (GITHUB_REPOSITORY, GITHUB_TOKEN) are
// applied before the FORKTRACKER_* ones, the specific variables win.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	overlay := []struct {
		key string
		dst *string
	}{
		{"GITHUB_REPOSITORY", &c.Repository},
		{"GITHUB_TOKEN", &c.GithubAPIToken},
		{"FORKTRACKER_REPOSITORY", &c.Repository},
		{"FORKTRACKER_GITHUB_API_TOKEN", &c.GithubAPIToken},
		{"FORKTRACKER_BASE_BRANCH", &c.BaseBranch},
		{"FORKTRACKER_EXCLUDED_REPOSITORIES", &c.ExcludedRepositories},
	}

	for _, entry := range overlay {
		if val, exists := os.LookupEnv(entry.key); exists {
			*entry.dst = val
		}
	}
}

// ExclusionList returns the comma-separated excluded_repositories
// value as a slice of full repository names.
// Entries are trimmed of surrounding whitespace, empty entries are
// dropped.
func (c *Config) ExclusionList() []string {
	var result []string

	for _, entry := range strings.Split(c.ExcludedRepositories, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		result = append(result, entry)
	}

	return result
}
