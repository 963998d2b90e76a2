package registry

import (
	"github.com/ummjevel/eclo/internal/tts/catalog"
	"github.com/ummjevel/eclo/internal/tts/engine"
)

// Models is the global TTS model registry, keyed by catalog ID. Model
// packages register themselves via init(); binaries blank-import the
// families they ship.
var Models = New[engine.Model]()

// Resolve returns the adapter for a model identifier. Registered IDs map to
// their own family. Anything else (absolute paths, HuggingFace refs,
// fine-tune IDs from the catalog overlay) is treated as a CosyVoice3-family
// fine-tune: the CosyVoice3 adapter is built with model_path overridden to
// the given identifier.
func Resolve(id string, config map[string]string) (engine.Model, error) {
	if id == "" {
		id = catalog.CosyVoice3ID
	}
	if factory, ok := Models.Lookup(id); ok {
		return factory(config)
	}

	merged := make(map[string]string, len(config)+1)
	for k, v := range config {
		merged[k] = v
	}
	merged["model_path"] = id
	return Models.Create(catalog.CosyVoice3ID, merged)
}
