package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagPresetDir = flag.String("preset-dir", "", "Preset directory")
	flagOutDir    = flag.String("out", "", "Output directory")
	flagInstances = flag.Int("instances", 0, "Tentacle instance count")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPresetDir != "" {
		cfg.Generator.PresetDir = *flagPresetDir
	}
	if *flagOutDir != "" {
		cfg.Output.Dir = *flagOutDir
	}
	if *flagInstances > 0 {
		cfg.Animation.Instances = *flagInstances
	}
}
