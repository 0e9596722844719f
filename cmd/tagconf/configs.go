package main

import (
	"github.com/scott-cotton/cli"

	"github.com/mineworks/tagconf/codec"
)

type MainConfig struct {
	Depth int `cli:"name=depth desc='max nesting depth'"`

	Main *cli.Command
}

func (cfg *MainConfig) codec() *codec.Codec {
	opts := []codec.Option{codec.KeepSerialized()}
	if cfg.Depth > 0 {
		opts = append(opts, codec.WithMaxDepth(cfg.Depth))
	}
	return codec.New(opts...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Out  string `cli:"name=o desc='output file'"`
	Gzip bool   `cli:"name=z aliases=gzip desc='gzip the output file'"`

	Load *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force colored output'"`

	Diff *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Out  string `cli:"name=o desc='output file (default: in place)'"`
	Gzip bool   `cli:"name=z aliases=gzip desc='gzip the output file'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress output, use exit status only'"`

	Match *cli.Command
}
