// Package cosyvoice adapts the CosyVoice3 model family, Eclo's default
// voice-cloning model. Custom fine-tune identifiers resolve to this family
// with an overridden model path.
package cosyvoice

import (
	"context"
	"errors"

	"github.com/ummjevel/eclo/internal/tts/catalog"
	"github.com/ummjevel/eclo/internal/tts/engine"
	"github.com/ummjevel/eclo/internal/tts/registry"
	"github.com/ummjevel/eclo/internal/tts/synth"
)

func init() {
	registry.Models.Register(catalog.CosyVoice3ID, func(config map[string]string) (engine.Model, error) {
		modelPath := config["model_path"]
		if modelPath == "" {
			modelPath = catalog.CosyVoice3ID
		}
		return New(modelPath, synth.NewRunner(config)), nil
	})
}

// Model implements engine.Model for CosyVoice3.
type Model struct {
	modelPath string
	runner    *synth.Runner
}

// New creates a CosyVoice3 adapter for the given model path.
func New(modelPath string, runner *synth.Runner) *Model {
	return &Model{modelPath: modelPath, runner: runner}
}

// Generate synthesizes speech conditioned on a reference voice sample.
// A missing reference is a hard validation error, not something the library
// gets a chance to reject.
func (m *Model) Generate(ctx context.Context, req engine.GenerateRequest) (engine.Result, error) {
	if req.RefAudio == "" {
		return engine.Result{}, errors.New(
			"CosyVoice3 requires a reference voice audio. Please select a voice first.")
	}

	// With a reference transcript the library clones in zero-shot mode;
	// without one it falls back to cross-lingual cloning.
	mode := "cross_lingual"
	if req.RefText != "" {
		mode = "zero_shot"
	}

	req.Progress.Report("loading", 10, "Loading model...")
	req.Progress.Report("processing", 30, "Generating audio...")

	out, duration, err := m.runner.Synthesize(ctx, synth.Job{
		Text:       req.Text,
		Model:      m.modelPath,
		RefAudio:   req.RefAudio,
		RefText:    req.RefText,
		Speed:      req.Speed,
		OutputPath: req.OutputPath,
		Progress:   req.Progress,
	})
	if err != nil {
		return engine.Result{}, err
	}

	return engine.Result{
		Success:    true,
		OutputPath: out,
		Duration:   duration,
		Mode:       mode,
	}, nil
}

// Languages returns the codes CosyVoice3 supports.
func (m *Model) Languages() []string {
	return catalog.Languages(catalog.CosyVoice3ID)
}
