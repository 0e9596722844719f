package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/mineworks/tagconf/codec"
	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/nbtio"
	"github.com/mineworks/tagconf/tag"
)

// getTreeFile loads a binary tag-tree file. "-" reads from stdin.
func getTreeFile(cc *cli.Context, cfg *MainConfig, path string) (*tag.Node, error) {
	var opts []nbtio.DecoderOption
	if cfg.Depth > 0 {
		opts = append(opts, nbtio.DecodeMaxDepth(cfg.Depth))
	}
	if path != "-" {
		return nbtio.ReadFile(path, opts...)
	}
	data, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return nbtio.Unmarshal(data)
}

// decodeTree converts a tree to its section form without rehydrating
// objects; the tool has no factories for anyone's types.
func decodeTree(c *codec.Codec, root *tag.Node) (*conf.Section, error) {
	v, err := c.Decode(root, "", nil)
	if err != nil {
		return nil, err
	}
	section, ok := v.(*conf.Section)
	if !ok {
		return nil, fmt.Errorf("root tag is %T, not a compound", v)
	}
	return section, nil
}

func treeToYAML(cfg *MainConfig, root *tag.Node) ([]byte, error) {
	section, err := decodeTree(cfg.codec(), root)
	if err != nil {
		return nil, err
	}
	return conf.ToYAML(section)
}
