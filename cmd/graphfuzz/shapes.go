package main

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/graphfuzz/builder"
	"github.com/katalvlaran/graphfuzz/codec"
	"github.com/katalvlaran/graphfuzz/core"
)

// shapeSeeds lists the canonical topologies written by `corpus --shapes`.
func shapeSeeds() map[string]builder.Constructor[int8] {
	return map[string]builder.Constructor[int8]{
		"path-8":     builder.Path[int8](8),
		"cycle-1":    builder.Cycle[int8](1),
		"cycle-6":    builder.Cycle[int8](6),
		"star-6":     builder.Star[int8](6),
		"wheel-6":    builder.Wheel[int8](6),
		"complete-4": builder.Complete[int8](4),
		"grid-3x3":   builder.Grid[int8](3, 3),
		"sparse-10":  builder.RandomSparse[int8](10, 0.2),
	}
}

// shapePayload numbers nodes by position, wrapping within int8.
func shapePayload(i int) int8 { return int8(i) }

// writeShapes stores every canonical shape under its structural hash and
// returns how many files were newly created.
func writeShapes(a *app, dir string) (int, error) {
	c, err := a.wireCodec()
	if err != nil {
		return 0, err
	}
	ext := "." + string(c.Format())
	bopts := []builder.BuilderOption{builder.WithSeed(a.profile.Seed)}

	written := 0
	for name, ctor := range shapeSeeds() {
		g, err := builder.BuildGraph(shapePayload, bopts, ctor)
		if err != nil {
			return written, fmt.Errorf("shape %s: %w", name, err)
		}
		created, err := storeGraph(c, dir, ext, g)
		if err != nil {
			return written, fmt.Errorf("shape %s: %w", name, err)
		}
		if created {
			written++
		}
		a.logger.Debug("shape seeded", "shape", name, "nodes", g.Len(), "created", created)
	}

	return written, nil
}

// storeGraph writes g to dir under its structural hash.
func storeGraph(c *codec.Codec[int8], dir, ext string, g *core.Graph[int8]) (bool, error) {
	sum, err := codec.Sum64(g)
	if err != nil {
		return false, err
	}
	data, err := c.Encode(g)
	if err != nil {
		return false, err
	}

	return writeExclusive(filepath.Join(dir, fmt.Sprintf("%016x%s", sum, ext)), data)
}
