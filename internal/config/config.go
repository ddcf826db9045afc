// Package config loads process settings from the environment and per-project
// defaults from a .project-stats.yml file in the scanned directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HatsuSumi/project-stats/internal/validation"
)

// ConfigFileName is looked up in the scan root.
const ConfigFileName = ".project-stats.yml"

// ScanConfig represents the .project-stats.yml configuration file. Every
// field is optional; flags on the command line take precedence.
type ScanConfig struct {
	Exclude []string    `yaml:"exclude,omitempty"`
	Options ScanOptions `yaml:"options,omitempty"`
	Output  ScanOutput  `yaml:"output,omitempty"`
}

// ScanOptions mirrors the scan command's behavior flags.
type ScanOptions struct {
	Assets        bool `yaml:"assets,omitempty"`
	Detail        bool `yaml:"detail,omitempty"`
	ListFiles     bool `yaml:"list_files,omitempty"`
	NoIgnore      bool `yaml:"no_ignore,omitempty"`
	IncludeHidden bool `yaml:"include_hidden,omitempty"`
	SkipVendor    bool `yaml:"skip_vendor,omitempty"`
	Licenses      bool `yaml:"licenses,omitempty"`
}

// ScanOutput names report files to write alongside the terminal output.
type ScanOutput struct {
	HTML string `yaml:"html,omitempty"`
	PDF  string `yaml:"pdf,omitempty"`
	Log  string `yaml:"log,omitempty"`
}

// LoadConfig attempts to load .project-stats.yml from the scan root. A
// missing file yields an empty config, not an error; a present but invalid
// file is an error so misconfiguration does not silently degrade.
func LoadConfig(scanPath string) (*ScanConfig, error) {
	configPath := filepath.Join(scanPath, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &ScanConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	if err := validation.ValidateYAML(validation.ConfigSchema, data); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}

	var cfg ScanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	return &cfg, nil
}

// MergeExcludes merges config excludes with CLI excludes. Both apply; CLI
// patterns come last.
func (c *ScanConfig) MergeExcludes(cliExcludes []string) []string {
	if c == nil {
		return cliExcludes
	}
	merged := make([]string, 0, len(c.Exclude)+len(cliExcludes))
	merged = append(merged, c.Exclude...)
	merged = append(merged, cliExcludes...)
	return merged
}
