package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mineworks/tagconf/conf"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get <key.path> [file]", cli.ErrUsage)
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

	var v any = section
	for _, part := range strings.Split(args[0], ".") {
		cur, ok := v.(*conf.Section)
		if !ok {
			return fmt.Errorf("%q is not a section", args[0])
		}
		v = cur.Get(part)
		if v == nil {
			return cli.ExitCodeErr(1)
		}
	}

	switch x := v.(type) {
	case *conf.Section:
		d, err := conf.ToYAML(x)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	default:
		_, err := fmt.Fprintf(cc.Out, "%v\n", x)
		return err
	}
}
