// tentaclegen is a CLI for generating tentacle meshes, shape keys, LOD
// summaries and animation previews from named presets.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bretbouchard/tentaclegen/internal/config"
	"github.com/bretbouchard/tentaclegen/internal/logger"
)

func main() {
	// Global flags (-config, -debug, ...) come before the subcommand.
	config.ParseFlags()
	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "generate", "gen":
		cmdGenerate(cfg, args)
	case "lods":
		cmdLODs(cfg, args)
	case "shapekeys", "keys":
		cmdShapeKeys(cfg, args)
	case "animate", "anim":
		cmdAnimate(cfg, args)
	case "presets", "ls":
		cmdPresets(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tentaclegen - procedural tentacle mesh generator

Usage:
  tentaclegen <command> [options]

Commands:
  generate [-preset name] [-out dir]   Generate mesh, suckers, shape keys, bones
  lods     [-preset name]              Print the LOD chain for a preset
  shapekeys [-preset name]             Print shape-key displacement statistics
  animate  [-duration s] [-dt s]       Preview staggered emergence choreography
  presets                              List available presets

Examples:
  tentaclegen generate -preset kraken -out ./out
  tentaclegen lods -preset kraken
  tentaclegen animate -duration 3 -dt 0.1`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
