// Package catalog holds the static model descriptors advertised by
// list-models, plus an optional YAML overlay for custom entries.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Canonical model identifiers. These double as registry keys.
const (
	CosyVoice3ID = "mlx-community/Fun-CosyVoice3-0.5B-2512-fp16"
	OuteTTSID    = "mlx-community/OuteTTS-0.2-500M-MLX"
	KokoroID     = "mlx-community/Kokoro-82M-MLX"
)

// Model describes an available TTS model to the host UI.
type Model struct {
	ID        string   `json:"id"        yaml:"id"`
	Name      string   `json:"name"      yaml:"name"`
	Languages []string `json:"languages" yaml:"languages"`
	Features  []string `json:"features"  yaml:"features"`
}

// Builtin returns the three models Eclo ships with.
func Builtin() []Model {
	return []Model{
		{
			ID:        CosyVoice3ID,
			Name:      "CosyVoice3 0.5B",
			Languages: []string{"zh", "en", "ja", "ko", "de", "es", "fr", "it", "ru"},
			Features:  []string{"voice_cloning", "cross_lingual", "instruct"},
		},
		{
			ID:        OuteTTSID,
			Name:      "OuteTTS 0.2 500M",
			Languages: []string{"en", "zh", "ja", "ko"},
			Features:  []string{"voice_cloning"},
		},
		{
			ID:        KokoroID,
			Name:      "Kokoro 82M",
			Languages: []string{"en", "ja"},
			Features:  []string{},
		},
	}
}

// Languages returns the language codes of a builtin model, or nil for
// unknown identifiers.
func Languages(id string) []string {
	for _, m := range Builtin() {
		if m.ID == id {
			return m.Languages
		}
	}
	return nil
}

// Load returns the builtin models plus any entries from the given YAML file.
// An empty path returns just the builtins. Custom entries resolve through
// the CosyVoice3 fallback at generation time.
func Load(path string) ([]Model, error) {
	models := Builtin()
	if path == "" {
		return models, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read models file %q: %w", path, err)
	}

	var extra []Model
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse models file %q: %w", path, err)
	}

	for _, m := range extra {
		if m.ID == "" {
			return nil, fmt.Errorf("models file %q: entry without id", path)
		}
		if m.Features == nil {
			m.Features = []string{}
		}
		models = append(models, m)
	}
	return models, nil
}
