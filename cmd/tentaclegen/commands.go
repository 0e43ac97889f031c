package main

import (
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bretbouchard/tentaclegen/internal/anim"
	"github.com/bretbouchard/tentaclegen/internal/body"
	"github.com/bretbouchard/tentaclegen/internal/config"
	"github.com/bretbouchard/tentaclegen/internal/lod"
	"github.com/bretbouchard/tentaclegen/internal/logger"
	"github.com/bretbouchard/tentaclegen/internal/preset"
	"github.com/bretbouchard/tentaclegen/internal/shapekey"
	"github.com/bretbouchard/tentaclegen/internal/sucker"
)

func loadPreset(cfg *config.Config, fs *flag.FlagSet, args []string) (*preset.Resolved, string) {
	name := fs.String("preset", cfg.Generator.DefaultPreset, "Preset name")
	dir := fs.String("presets", cfg.Generator.PresetDir, "Preset directory")
	if err := fs.Parse(args); err != nil {
		fatal("parsing flags: %v", err)
	}

	store := preset.NewStore(*dir)
	resolved, err := store.Load(*name)
	if err != nil {
		fatal("loading preset: %v", err)
	}
	return resolved, *name
}

func cmdGenerate(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", cfg.Output.Dir, "Output directory")
	resolved, name := loadPreset(cfg, fs, args)

	buf, err := body.Generate(resolved.Body)
	if err != nil {
		fatal("generating body: %v", err)
	}
	logger.Info("body generated",
		zap.String("preset", name),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("faces", buf.FaceCount()),
	)

	instances, err := sucker.Place(resolved.Suckers, resolved.Body.Length, resolved.Body.RadiusAt)
	if err != nil {
		fatal("placing suckers: %v", err)
	}

	deformer, err := shapekey.NewDeformer(buf.Positions)
	if err != nil {
		fatal("building deformer: %v", err)
	}
	keys := deformer.GenerateAll(buf.Positions)

	bones, err := body.BoneChain(buf.Bounds(), cfg.Generator.BoneCount)
	if err != nil {
		fatal("computing bone chain: %v", err)
	}

	stats := lod.StatsOf(buf, len(keys) > 0, len(bones) > 0)
	lods, err := lod.Generate(stats, resolved.LODs)
	if err != nil {
		fatal("generating LODs: %v", err)
	}

	path, err := writeDump(*out, name, cfg.Output.Pretty, buf, instances, keys, bones, stats, lods)
	if err != nil {
		fatal("writing dump: %v", err)
	}
	fmt.Printf("%s: %d vertices, %d faces, %d suckers, %d shape keys -> %s\n",
		name, buf.VertexCount(), buf.FaceCount(), len(instances), len(keys), path)
}

func cmdLODs(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("lods", flag.ExitOnError)
	resolved, name := loadPreset(cfg, fs, args)

	buf, err := body.Generate(resolved.Body)
	if err != nil {
		fatal("generating body: %v", err)
	}
	results, err := lod.Generate(lod.StatsOf(buf, true, true), resolved.LODs)
	if err != nil {
		fatal("generating LODs: %v", err)
	}

	fmt.Printf("LOD chain for %s:\n", name)
	fmt.Printf("  %-8s %10s %10s\n", "level", "vertices", "triangles")
	for _, r := range results {
		fmt.Printf("  %-8s %10d %10d\n", r.Name, r.VertexCount, r.TriangleCount)
	}
}

func cmdShapeKeys(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("shapekeys", flag.ExitOnError)
	resolved, name := loadPreset(cfg, fs, args)

	buf, err := body.Generate(resolved.Body)
	if err != nil {
		fatal("generating body: %v", err)
	}
	deformer, err := shapekey.NewDeformer(buf.Positions)
	if err != nil {
		fatal("building deformer: %v", err)
	}

	fmt.Printf("Shape keys for %s:\n", name)
	fmt.Printf("  %-14s %14s %12s\n", "key", "max disp", "volume %")
	for _, p := range shapekey.Presets {
		if p == shapekey.Base {
			continue
		}
		res := deformer.Apply(buf.Positions, p.Params())
		fmt.Printf("  %-14s %14.5f %+11.1f%%\n", p, res.MaxDisplacement, res.VolumeChangePct)
	}
}

func cmdAnimate(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("animate", flag.ExitOnError)
	duration := fs.Float64("duration", 3.0, "Simulated seconds")
	dt := fs.Float64("dt", 0.1, "Step size in seconds")
	if err := fs.Parse(args); err != nil {
		fatal("parsing flags: %v", err)
	}
	if *dt <= 0 || *duration <= 0 {
		fatal("duration and dt must be positive")
	}

	coord, err := anim.NewCoordinator(cfg.Animation.Instances, cfg.Animation.BaseDelay, cfg.Animation.StaggerDelay)
	if err != nil {
		fatal("creating coordinator: %v", err)
	}
	coord.TriggerEmergence()

	fmt.Printf("Staggered emergence, %d instances (base %.2fs, stagger %.2fs):\n",
		coord.Count(), cfg.Animation.BaseDelay, cfg.Animation.StaggerDelay)
	for elapsed := 0.0; elapsed < *duration; elapsed += *dt {
		coord.Update(float32(*dt))
		states := make([]string, coord.Count())
		for i := range states {
			states[i] = coord.Instance(i).State().String()
		}
		fmt.Printf("  t=%5.2f  %s\n", elapsed+*dt, strings.Join(states, "  "))
	}
}

func cmdPresets(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	dir := fs.String("presets", cfg.Generator.PresetDir, "Preset directory")
	if err := fs.Parse(args); err != nil {
		fatal("parsing flags: %v", err)
	}

	store := preset.NewStore(*dir)
	names, err := store.Available()
	if err != nil {
		fatal("listing presets: %v", err)
	}
	if len(names) == 0 {
		fmt.Printf("no presets in %s\n", *dir)
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
