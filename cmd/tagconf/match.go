package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

// match evaluates a boolean expression against the decoded form of a
// tag-tree file. The expression sees the tree's top-level keys as
// variables; nested compounds are maps.
func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: match <expr> [file]", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}

	root, err := getTreeFile(cc, cfg.MainConfig, file)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	section, err := decodeTree(cfg.codec(), root)
	if err != nil {
		return err
	}
	env := section.AsMap()

	prg, err := expr.Compile(args[0], expr.Env(env), expr.AsBool())
	if err != nil {
		return fmt.Errorf("error compiling expression: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return fmt.Errorf("error evaluating expression: %w", err)
	}
	matched, _ := res.(bool)
	if !cfg.Quiet {
		fmt.Fprintln(cc.Out, matched)
	}
	if !matched {
		return cli.ExitCodeErr(1)
	}
	return nil
}
