package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Context: 3}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "context",
			Aliases:     []string{"C"},
			Description: "unchanged lines shown around each hunk (default 3)",
			Type:        cli.NamedFuncOpt(cfg.contextOpt, "(lines)"),
		},
		{
			Name:        "lang",
			Aliases:     []string{"l"},
			Description: "override language detection: go, python, rust, ...",
			Type:        cli.NamedFuncOpt(cfg.langOpt, "(language)"),
		},
		{
			Name:        "prefer",
			Description: "nested delimiter blame: outer or inner (default outer)",
			Type:        cli.NamedFuncOpt(cfg.preferOpt, "(outer|inner)"),
		},
		{
			Name:        "tiny",
			Description: "subtree size below which coarse alignment defers to the fine pass",
			Type:        cli.NamedFuncOpt(cfg.tinyOpt, "(nodes)"),
		},
		{
			Name:        "skip",
			Description: `expr predicate for subtrees to ignore, e.g. 'kind == "comment"'`,
			Type:        cli.NamedFuncOpt(cfg.skipOpt, "(expr)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "syd").
		WithSynopsis("syd [opts] <old-file> <new-file>").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sydMain(cfg, cc, args)
		})
}

const usageText = `syd - structural syntax diff

Usage:
  syd [opts] <old-file> <new-file>

Compares two versions of a source file by parse tree rather than by
line, so moved brackets and duplicated blocks are attributed the way a
reader expects. Exits 1 when the files differ, 0 when they match.

Options may also come from a .syd.yaml file in the working directory;
command line flags win.

Examples:
  syd old.go new.go
  syd -context 1 -prefer inner old.rs new.rs
  syd -skip 'kind == "comment"' old.py new.py`
