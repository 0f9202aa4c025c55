package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"fps": 60,
		"window": { "width": 640, "height": 480 },
		"record": { "enabled": true, "framesDir": "/tmp/f" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, 60, FPS())
	assert.Equal(t, WindowConfig{Width: 640, Height: 480, Title: "anima"}, Window())
	assert.Equal(t, RecordConfig{Enabled: true, MaxFrames: 300, FramesDir: "/tmp/f", OutputDir: "."}, Record())
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "scene.json", ScenePath())
	assert.Equal(t, "assets/shaders", ShadersDir())
	assert.Equal(t, int64(1), Seed())
	assert.Equal(t, 30, FPS())
	assert.Equal(t, WindowConfig{Width: 1280, Height: 720, Title: "anima"}, Window())
	assert.False(t, Record().Enabled)
	assert.Equal(t, 300, Record().MaxFrames)
	assert.Equal(t, ProfileConfig{Mode: "cpu", Path: "."}, Profile())
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"fps":`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestBindFlagsOverrideFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"fps": 60, "seed": 9}`), 0644))
	require.NoError(t, Load(dir))

	fs := pflag.NewFlagSet("anima", pflag.ContinueOnError)
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--fps=24", "--record", "--scene=demo.json"}))

	assert.Equal(t, 24, FPS())
	assert.Equal(t, int64(9), Seed())
	assert.True(t, Record().Enabled)
	assert.Equal(t, "demo.json", ScenePath())
}

func TestFrameDuration(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("fps", 25)
	assert.Equal(t, 40*time.Millisecond, FrameDuration())

	viper.Set("fps", 0)
	assert.Equal(t, 1, FPS())
	assert.Equal(t, time.Second, FrameDuration())
}
