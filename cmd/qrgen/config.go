package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the flag set so a config file can supply defaults
// for scripted or repeated invocations without retyping flags.
type fileConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Level  string `yaml:"level"`
	Pixels int    `yaml:"pixels"`
}

// applyConfigFile loads opts.configPath and fills in any option the
// command line left at its default: an empty input or output path, 20
// pixels per module, or no level flag. A flag passed with its default
// value (for example -p 20) does not override the config file.
func applyConfigFile(opts *options) error {
	raw, err := os.ReadFile(opts.configPath)
	if err != nil {
		return err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return err
	}

	if opts.inPath == "" {
		opts.inPath = cfg.Input
	}
	if opts.outPath == "" {
		opts.outPath = cfg.Output
	}
	if opts.pixels == 20 && cfg.Pixels > 0 {
		opts.pixels = cfg.Pixels
	}
	anyLevelFlag := opts.levelL || opts.levelM || opts.levelQ || opts.levelH
	if !anyLevelFlag {
		switch cfg.Level {
		case "M":
			opts.levelM = true
		case "Q":
			opts.levelQ = true
		case "H":
			opts.levelH = true
		case "L", "":
			// L is the zero-value default; nothing to set.
		}
	}
	return nil
}
