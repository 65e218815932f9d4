package main

import (
	"context"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	syndiff "github.com/syndiff/go-syndiff"
	"github.com/syndiff/go-syndiff/encode"
	"github.com/syndiff/go-syndiff/libdiff"
	"github.com/syndiff/go-syndiff/parse"
	"github.com/syndiff/go-syndiff/syntax"
)

func sydMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <old-file> <new-file>, got %d arguments", cli.ErrUsage, len(args))
	}
	fc, err := loadFileConfig()
	if err != nil {
		return err
	}
	if err := cfg.applyFileConfig(fc); err != nil {
		return err
	}

	lhsPath, rhsPath := args[0], args[1]
	lang, err := cfg.language(lhsPath, rhsPath)
	if err != nil {
		return err
	}
	lhsSrc, err := os.ReadFile(lhsPath)
	if err != nil {
		return err
	}
	rhsSrc, err := os.ReadFile(rhsPath)
	if err != nil {
		return err
	}

	var parseOpts []parse.Option
	if cfg.Skip != "" {
		parseOpts = append(parseOpts, parse.Skip(cfg.Skip))
	}
	ctx := context.Background()
	lhs, err := parse.Parse(ctx, lhsSrc, lang, parseOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", lhsPath, err)
	}
	rhs, err := parse.Parse(ctx, rhsSrc, lang, parseOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", rhsPath, err)
	}

	if cfg.tinySet {
		libdiff.SetTinyListThreshold(cfg.Tiny)
	}

	lhsTree, rhsTree := syntax.Prepare(lhs, rhs)
	cm := syndiff.Diff(lhsTree, rhsTree, cfg.Prefer)
	err = encode.Encode(cc.Out, lhsSrc, rhsSrc, lhsTree, rhsTree, cm,
		cfg.encodeOpts(cc, lhsPath, rhsPath)...)
	if err != nil {
		return err
	}
	if syndiff.Changed(lhsTree, cm) || syndiff.Changed(rhsTree, cm) {
		// git difftool convention
		os.Exit(1)
	}
	return nil
}

func (cfg *MainConfig) language(lhsPath, rhsPath string) (parse.Language, error) {
	if cfg.Lang != "" {
		return cfg.Lang, nil
	}
	if lang, ok := parse.LanguageFromPath(lhsPath); ok {
		return lang, nil
	}
	if lang, ok := parse.LanguageFromPath(rhsPath); ok {
		return lang, nil
	}
	return "", fmt.Errorf("%w: could not detect a language from %q or %q, use -lang", cli.ErrUsage, lhsPath, rhsPath)
}
