package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shreejitmurthy/meta-parser/generator"
	"github.com/shreejitmurthy/meta-parser/parser"
)

// Config is the optional YAML configuration file. Every setting has a
// default, so a partial file only overrides what it names:
//
//	limits:
//	  max_objects: 64
//	  max_fields: 32
//	generator:
//	  suffix: Data
//	  header_comment: "/* Auto-generated code - do not edit! */"
type Config struct {
	Limits struct {
		MaxObjects int `yaml:"max_objects"`
		MaxFields  int `yaml:"max_fields"`
	} `yaml:"limits"`
	Generator struct {
		Suffix        string `yaml:"suffix"`
		HeaderComment string `yaml:"header_comment"`
	} `yaml:"generator"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Limits.MaxObjects = parser.DefaultMaxObjects
	cfg.Limits.MaxFields = parser.DefaultMaxFields
	cfg.Generator.Suffix = parser.DefaultSuffix
	cfg.Generator.HeaderComment = generator.DefaultHeaderComment
	return cfg
}

// loadConfig returns the defaults when path is empty, otherwise the defaults
// overlaid with the file's settings.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c Config) limits() parser.Limits {
	return parser.Limits{
		MaxObjects: c.Limits.MaxObjects,
		MaxFields:  c.Limits.MaxFields,
	}
}
