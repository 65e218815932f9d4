package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/syndiff/go-syndiff/encode"
	"github.com/syndiff/go-syndiff/libdiff"
	"github.com/syndiff/go-syndiff/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Context    int
	contextSet bool
	Lang       parse.Language
	Prefer     libdiff.Preference
	preferSet  bool
	Tiny       int
	tinySet    bool
	Skip       string
	skipSet    bool

	Main *cli.Command
}

func (cfg *MainConfig) contextOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: -context expects a non-negative integer, got %q", cli.ErrUsage, a)
	}
	cfg.Context = n
	cfg.contextSet = true
	return n, nil
}

func (cfg *MainConfig) langOpt(_ *cli.Context, a string) (any, error) {
	lang, ok := parse.LanguageFromName(a)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language %q", cli.ErrUsage, a)
	}
	cfg.Lang = lang
	return lang, nil
}

func (cfg *MainConfig) preferOpt(_ *cli.Context, a string) (any, error) {
	pref, err := parsePreference(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.Prefer = pref
	cfg.preferSet = true
	return a, nil
}

func (cfg *MainConfig) tinyOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: -tiny expects a positive integer, got %q", cli.ErrUsage, a)
	}
	cfg.Tiny = n
	cfg.tinySet = true
	return n, nil
}

func (cfg *MainConfig) skipOpt(_ *cli.Context, a string) (any, error) {
	cfg.Skip = a
	cfg.skipSet = true
	return a, nil
}

func parsePreference(v string) (libdiff.Preference, error) {
	switch v {
	case "outer":
		return libdiff.PreferOuter, nil
	case "inner":
		return libdiff.PreferInner, nil
	}
	return libdiff.PreferOuter, fmt.Errorf("-prefer expects outer or inner, got %q", v)
}

const configFile = ".syd.yaml"

type fileConfig struct {
	Color   *bool  `yaml:"color"`
	Context *int   `yaml:"context"`
	Lang    string `yaml:"lang"`
	Prefer  string `yaml:"prefer"`
	Tiny    *int   `yaml:"tiny"`
	Skip    string `yaml:"skip"`
}

func loadFileConfig() (*fileConfig, error) {
	d, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return &fileConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", configFile, err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", configFile, err)
	}
	return fc, nil
}

// applyFileConfig fills in settings the command line left untouched.
func (cfg *MainConfig) applyFileConfig(fc *fileConfig) error {
	if fc.Context != nil && !cfg.contextSet && *fc.Context >= 0 {
		cfg.Context = *fc.Context
	}
	if fc.Lang != "" && cfg.Lang == "" {
		lang, ok := parse.LanguageFromName(fc.Lang)
		if !ok {
			return fmt.Errorf("%s: unsupported language %q", configFile, fc.Lang)
		}
		cfg.Lang = lang
	}
	if fc.Prefer != "" && !cfg.preferSet {
		pref, err := parsePreference(fc.Prefer)
		if err != nil {
			return fmt.Errorf("%s: %v", configFile, err)
		}
		cfg.Prefer = pref
	}
	if fc.Tiny != nil && !cfg.tinySet && *fc.Tiny >= 1 {
		cfg.Tiny = *fc.Tiny
		cfg.tinySet = true
	}
	if fc.Skip != "" && !cfg.skipSet {
		cfg.Skip = fc.Skip
	}
	if fc.Color != nil && !cfg.colorFlagSet() {
		cfg.Color = *fc.Color
	}
	return nil
}

func (cfg *MainConfig) colorFlagSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) encodeOpts(cc *cli.Context, lhsPath, rhsPath string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Context(cfg.Context),
		encode.Paths(lhsPath, rhsPath),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.colorFlagSet() {
		return res
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
