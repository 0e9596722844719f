package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/nbtio"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Out == "" {
		return fmt.Errorf("%w: load requires -o", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: load takes at most one input file, got %v", cli.ErrUsage, args)
	}

	var data []byte
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cc.In)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	section, err := conf.FromYAML(data)
	if err != nil {
		return err
	}
	root, err := cfg.codec().Encode(section)
	if err != nil {
		return err
	}
	return nbtio.WriteFile(cfg.Out, root, cfg.Gzip)
}
