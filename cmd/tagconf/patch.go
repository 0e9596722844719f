package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/nbtio"
)

// patch applies an RFC 7386 merge patch to the decoded form of a
// tag-tree file and writes the result back out. Fixed-width kinds
// round through JSON, so integers come back at the narrowest wire
// width that fits; the reserved-key discipline is the item model's
// business, not this tool's.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch <patch.json> <file>", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading patch: %w", err)
	}

	root, err := getTreeFile(cc, cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	section, err := decodeTree(cfg.codec(), root)
	if err != nil {
		return err
	}
	orig, err := conf.ToJSON(section)
	if err != nil {
		return err
	}

	merged, err := jsonpatch.MergePatch(orig, patchData)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}

	// goccy parses JSON as a YAML subset, keeping key order.
	patched, err := conf.FromYAML(merged)
	if err != nil {
		return err
	}
	out, err := cfg.codec().Encode(patched)
	if err != nil {
		return err
	}

	dest := cfg.Out
	if dest == "" {
		dest = args[1]
	}
	return nbtio.WriteFile(dest, out, cfg.Gzip)
}
