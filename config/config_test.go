package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.PythonBin == "" {
		t.Error("PythonBin should have a default")
	}
	if cfg.SynthModule != "mlx_audio.tts.generate" {
		t.Errorf("SynthModule = %q, want mlx_audio.tts.generate", cfg.SynthModule)
	}
	if cfg.FFmpegBin != "ffmpeg" {
		t.Errorf("FFmpegBin = %q, want ffmpeg", cfg.FFmpegBin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ECLO_PYTHON_BIN", "/opt/eclo/venv/bin/python")
	t.Setenv("ECLO_TTS_MODULE", "mlx_audio_plus.tts.generate")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.PythonBin != "/opt/eclo/venv/bin/python" {
		t.Errorf("PythonBin = %q", cfg.PythonBin)
	}
	if got := cfg.SynthConfig()["module"]; got != "mlx_audio_plus.tts.generate" {
		t.Errorf("SynthConfig module = %q", got)
	}
}

func TestSlogLevelFallback(t *testing.T) {
	c := Config{LogLevel: "noisy"}
	if got := c.slogLevel(); got.String() != "ERROR" {
		t.Errorf("slogLevel = %v, want ERROR", got)
	}

	c = Config{LogLevel: "debug"}
	if got := c.slogLevel(); got.String() != "DEBUG" {
		t.Errorf("slogLevel = %v, want DEBUG", got)
	}
}
