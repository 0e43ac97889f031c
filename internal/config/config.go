// Package config handles generator tool configuration loading and management.
package config

// Config holds all generator tool settings.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Animation AnimationConfig `yaml:"animation"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig holds mesh generation settings.
type GeneratorConfig struct {
	PresetDir     string `yaml:"preset_dir"`     // directory of preset yaml files
	DefaultPreset string `yaml:"default_preset"` // preset used when none is given
	SuckerCupRes  int    `yaml:"sucker_cup_res"` // ring resolution of sucker cup meshes
	BoneCount     int    `yaml:"bone_count"`     // joints in the computed bone chain
}

// AnimationConfig holds multi-instance choreography settings.
type AnimationConfig struct {
	Instances    int     `yaml:"instances"`
	BaseDelay    float32 `yaml:"base_delay"`
	StaggerDelay float32 `yaml:"stagger_delay"`
}

// OutputConfig holds mesh dump settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Pretty bool   `yaml:"pretty"` // indent JSON dumps
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			PresetDir:     "./presets",
			DefaultPreset: "kraken",
			SuckerCupRes:  8,
			BoneCount:     6,
		},
		Animation: AnimationConfig{
			Instances:    4,
			BaseDelay:    0,
			StaggerDelay: 0.1,
		},
		Output: OutputConfig{
			Dir:    "./out",
			Pretty: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
