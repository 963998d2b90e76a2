// Package engine defines the contract shared by all TTS model adapters.
package engine

import (
	"context"

	"github.com/ummjevel/eclo/pkg/progress"
)

// GenerateRequest carries one synthesis call. It lives for a single process
// invocation; there is no session state across calls.
type GenerateRequest struct {
	Text       string
	Language   string
	OutputPath string

	// RefAudio is a short voice sample conditioning synthesis on a target
	// speaker. Required by some model families, optional for others.
	RefAudio string
	// RefText is the transcript of RefAudio; when present, cloning runs in
	// zero-shot mode instead of cross-lingual.
	RefText  string
	Instruct string
	Speed    float64

	// Progress receives stage events during generation. May be nil.
	Progress *progress.Reporter
}

// Result is the JSON object printed on stdout after generation.
type Result struct {
	Success    bool    `json:"success"`
	OutputPath string  `json:"output_path"`
	Duration   float64 `json:"duration"`
	Mode       string  `json:"mode,omitempty"`
}

// Model is a model-family-specific adapter over the external synthesis
// library. Adapters are always-loaded; the library lazy-loads weights on
// first use.
type Model interface {
	// Generate synthesizes speech and normalizes the library's output to
	// req.OutputPath. Validation and library failures come back as errors;
	// the CLI boundary converts them to {success:false, error} objects.
	Generate(ctx context.Context, req GenerateRequest) (Result, error)

	// Languages returns the language codes the model supports.
	Languages() []string
}
