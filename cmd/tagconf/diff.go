package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}

	texts := make([]string, 2)
	for i, file := range args {
		root, err := getTreeFile(cc, cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		d, err := treeToYAML(cfg.MainConfig, root)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		texts[i] = string(d)
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(texts[0], texts[1])
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	differs := false
	useColor := cfg.Color || wantColor(cc)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			differs = true
			writeMarked(cc, "+", d.Text, useColor, color.GreenString)
		case diffpatch.DiffDelete:
			differs = true
			writeMarked(cc, "-", d.Text, useColor, color.RedString)
		case diffpatch.DiffEqual:
			writeMarked(cc, " ", d.Text, false, nil)
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeMarked(cc *cli.Context, mark, text string, useColor bool, paint func(string, ...any) string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		out := mark + line
		if useColor && paint != nil {
			out = paint("%s", out)
		}
		fmt.Fprintln(cc.Out, out)
	}
}

func wantColor(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
