// Package config loads helper-process configuration from the environment.
package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the Eclo helper binaries. Everything has a
// working default; the Electron host overrides via environment variables.
type Config struct {
	// PythonBin is the interpreter used to run the mlx-audio CLI.
	PythonBin string `envDefault:"python3"                env:"ECLO_PYTHON_BIN"`
	// SynthModule is the Python module invoked for speech synthesis.
	SynthModule string `envDefault:"mlx_audio.tts.generate" env:"ECLO_TTS_MODULE"`
	// FFmpegBin is the ffmpeg binary used by the audio converter.
	FFmpegBin string `envDefault:"ffmpeg"                 env:"ECLO_FFMPEG_BIN"`
	// ModelsFile optionally points at a YAML file with extra model entries.
	ModelsFile string `envDefault:""                       env:"ECLO_MODELS_FILE"`
	LogLevel   string `envDefault:"error"                  env:"ECLO_LOG_LEVEL"`
}

// Load reads a .env file if present, then parses the environment.
func Load() (Config, error) {
	// Missing .env is the normal case; only explicit settings matter.
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}

// SynthConfig returns the factory config map handed to model adapters.
func (c Config) SynthConfig() map[string]string {
	return map[string]string{
		"python_bin": c.PythonBin,
		"module":     c.SynthModule,
	}
}

// SetupLogging replaces the default slog handler with one writing to stderr
// at the configured level. stdout is reserved for the JSON result object.
func (c Config) SetupLogging() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.slogLevel(),
	})))
}

func (c Config) slogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		slog.WarnContext(context.Background(), "unknown log level, using error",
			slog.String("level", c.LogLevel))
		return slog.LevelError
	}
	return lvl
}
