package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "anima.cfg.json"

// WindowConfig holds the output surface settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// RecordConfig holds offline recording settings
type RecordConfig struct {
	Enabled   bool   `json:"enabled" mapstructure:"enabled"`
	MaxFrames int    `json:"maxFrames" mapstructure:"maxFrames"`
	FramesDir string `json:"framesDir" mapstructure:"framesDir"`
	OutputDir string `json:"outputDir" mapstructure:"outputDir"`
}

// ProfileConfig holds pprof capture settings
type ProfileConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Mode    string `json:"mode" mapstructure:"mode"`
	Path    string `json:"path" mapstructure:"path"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("scene", "scene.json")
	viper.SetDefault("shadersDir", "assets/shaders")
	viper.SetDefault("seed", 1)
	viper.SetDefault("fps", 30)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "anima")

	viper.SetDefault("record.enabled", false)
	viper.SetDefault("record.maxFrames", 300)
	viper.SetDefault("record.framesDir", "frames")
	viper.SetDefault("record.outputDir", ".")

	viper.SetDefault("profile.enabled", false)
	viper.SetDefault("profile.mode", "cpu")
	viper.SetDefault("profile.path", ".")
}

// Load sets default values and merges the JSON config file from configDir if one exists.
// A missing file is not an error.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// BindFlags registers the command line overrides on fs and binds them to their keys.
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("scene", "scene.json", "scene description to load")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Int("fps", 30, "target frame rate; also the recording frame rate")
	fs.Int64("seed", 1, "seed for scattering objects without a position")
	fs.Bool("record", false, "render offline and encode a video")
	fs.Int("max-frames", 300, "frames to capture in record mode")
	fs.Bool("profile", false, "write a pprof profile on exit")

	bindings := map[string]string{
		"scene":            "scene",
		"logLevel":         "log-level",
		"fps":              "fps",
		"seed":             "seed",
		"record.enabled":   "record",
		"record.maxFrames": "max-frames",
		"profile.enabled":  "profile",
	}
	for key, name := range bindings {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func LogLevel() string   { return viper.GetString("logLevel") }
func ScenePath() string  { return viper.GetString("scene") }
func ShadersDir() string { return viper.GetString("shadersDir") }
func Seed() int64        { return viper.GetInt64("seed") }

// FPS returns the target frame rate. Values below 1 are treated as 1.
func FPS() int {
	return max(viper.GetInt("fps"), 1)
}

// FrameDuration is the frame budget in live mode and the fixed step in record mode
func FrameDuration() time.Duration {
	return time.Second / time.Duration(FPS())
}

func Window() WindowConfig {
	return WindowConfig{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
	}
}

func Record() RecordConfig {
	return RecordConfig{
		Enabled:   viper.GetBool("record.enabled"),
		MaxFrames: viper.GetInt("record.maxFrames"),
		FramesDir: viper.GetString("record.framesDir"),
		OutputDir: viper.GetString("record.outputDir"),
	}
}

func Profile() ProfileConfig {
	return ProfileConfig{
		Enabled: viper.GetBool("profile.enabled"),
		Mode:    viper.GetString("profile.mode"),
		Path:    viper.GetString("profile.path"),
	}
}
