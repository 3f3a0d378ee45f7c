// Package config loads the tool configuration from a YAML file.
// Missing fields keep their defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings.
type Config struct {
	// Dictionary paths
	WordDict  string `yaml:"word_dict"`
	NameDict  string `yaml:"name_dict"`
	KanjiDict string `yaml:"kanji_dict"`

	// Output
	LogsDir string `yaml:"logs_dir"`

	// Display
	ShowDefinitions bool `yaml:"show_definitions"`
	CopyMode        bool `yaml:"copy_mode"`
}

func defaultConfig() *Config {
	return &Config{
		WordDict:        "dict/words.edict",
		NameDict:        "dict/names.edict",
		KanjiDict:       "dict/kanjidic2.xml",
		LogsDir:         "logs",
		ShowDefinitions: true,
		CopyMode:        false,
	}
}

// Load reads the config file at path, overlaying the defaults with
// whatever fields the file sets. A nonexistent file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
