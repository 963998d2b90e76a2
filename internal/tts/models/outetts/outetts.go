// Package outetts adapts the OuteTTS model family. Voice cloning is
// optional; without a reference sample the model speaks in its own voice.
package outetts

import (
	"context"

	"github.com/ummjevel/eclo/internal/tts/catalog"
	"github.com/ummjevel/eclo/internal/tts/engine"
	"github.com/ummjevel/eclo/internal/tts/registry"
	"github.com/ummjevel/eclo/internal/tts/synth"
)

func init() {
	registry.Models.Register(catalog.OuteTTSID, func(config map[string]string) (engine.Model, error) {
		modelPath := config["model_path"]
		if modelPath == "" {
			modelPath = catalog.OuteTTSID
		}
		return New(modelPath, synth.NewRunner(config)), nil
	})
}

// Model implements engine.Model for OuteTTS.
type Model struct {
	modelPath string
	runner    *synth.Runner
}

// New creates an OuteTTS adapter for the given model path.
func New(modelPath string, runner *synth.Runner) *Model {
	return &Model{modelPath: modelPath, runner: runner}
}

// Generate synthesizes speech, forwarding the reference sample when one was
// supplied. The family reports no progress stages; the reporter is not
// handed to the runner.
func (m *Model) Generate(ctx context.Context, req engine.GenerateRequest) (engine.Result, error) {
	out, duration, err := m.runner.Synthesize(ctx, synth.Job{
		Text:       req.Text,
		Model:      m.modelPath,
		RefAudio:   req.RefAudio,
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

// Languages returns the codes OuteTTS supports.
func (m *Model) Languages() []string {
	return catalog.Languages(catalog.OuteTTSID)
}
