// Package kokoro adapts the Kokoro model family, the lightweight option
// without voice cloning.
package kokoro

import (
	"context"

	"github.com/ummjevel/eclo/internal/tts/catalog"
	"github.com/ummjevel/eclo/internal/tts/engine"
	"github.com/ummjevel/eclo/internal/tts/registry"
	"github.com/ummjevel/eclo/internal/tts/synth"
)

func init() {
	registry.Models.Register(catalog.KokoroID, func(config map[string]string) (engine.Model, error) {
		modelPath := config["model_path"]
		if modelPath == "" {
			modelPath = catalog.KokoroID
		}
		return New(modelPath, synth.NewRunner(config)), nil
	})
}

// Model implements engine.Model for Kokoro.
type Model struct {
	modelPath string
	runner    *synth.Runner
}

// New creates a Kokoro adapter for the given model path.
func New(modelPath string, runner *synth.Runner) *Model {
	return &Model{modelPath: modelPath, runner: runner}
}

// Generate synthesizes speech. Kokoro has no cloning support, so reference
// parameters are ignored. The family reports no progress stages; the
// reporter is not handed to the runner.
func (m *Model) Generate(ctx context.Context, req engine.GenerateRequest) (engine.Result, error) {
	out, duration, err := m.runner.Synthesize(ctx, synth.Job{
		Text:       req.Text,
		Model:      m.modelPath,
		Speed:      req.Speed,
		OutputPath: req.OutputPath,
	})
	if err != nil {
		return engine.Result{}, err
	}

	return engine.Result{
		Success:    true,
		OutputPath: out,
		Duration:   duration,
	}, nil
}

// Languages returns the codes Kokoro supports.
func (m *Model) Languages() []string {
	return catalog.Languages(catalog.KokoroID)
}
