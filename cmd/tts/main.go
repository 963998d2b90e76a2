// Command tts is the Eclo TTS dispatcher. It selects a model adapter by
// identifier, delegates synthesis to the external mlx-audio library, and
// prints exactly one JSON result object on stdout. Progress events are
// emitted as line-delimited JSON on stderr for the Electron host.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ummjevel/eclo/config"
	"github.com/ummjevel/eclo/internal/tts/catalog"
	"github.com/ummjevel/eclo/internal/tts/engine"
	"github.com/ummjevel/eclo/internal/tts/registry"
	"github.com/ummjevel/eclo/pkg/progress"

	// Register model families via init().
	_ "github.com/ummjevel/eclo/internal/tts/models/cosyvoice"
	_ "github.com/ummjevel/eclo/internal/tts/models/kokoro"
	_ "github.com/ummjevel/eclo/internal/tts/models/outetts"
)

type errorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tts", flag.ContinueOnError)
	fs.SetOutput(stderr)

	action := fs.String("action", "generate", "generate, list-models or list-languages")
	text := fs.String("text", "", "text to convert to speech")
	language := fs.String("language", "en", "language code")
	model := fs.String("model", catalog.CosyVoice3ID, "TTS model to use")
	output := fs.String("output", "", "output file path")
	refAudio := fs.String("ref-audio", "", "reference audio for voice cloning")
	refText := fs.String("ref-text", "", "reference text transcription")
	instruct := fs.String("instruct", "", "style instruction text")
	speed := fs.Float64("speed", 1.0, "speech speed (0.5-2.0)")

	if err := fs.Parse(args); err != nil {
		return fail(stdout, err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(stdout, err.Error())
	}
	cfg.SetupLogging()

	ctx := context.Background()

	switch *action {
	case "list-models":
		models, err := catalog.Load(cfg.ModelsFile)
		if err != nil {
			return fail(stdout, err.Error())
		}
		b, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return fail(stdout, err.Error())
		}
		fmt.Fprintln(stdout, string(b))
		return 0

	case "list-languages":
		// Catalog entries, including overlay fine-tunes, declare their own
		// languages. Anything else reports the resolved family's codes.
		models, err := catalog.Load(cfg.ModelsFile)
		if err != nil {
			return fail(stdout, err.Error())
		}
		for _, cm := range models {
			if cm.ID == *model && len(cm.Languages) > 0 {
				writeJSON(stdout, cm.Languages)
				return 0
			}
		}
		m, err := registry.Resolve(*model, cfg.SynthConfig())
		if err != nil {
			return fail(stdout, err.Error())
		}
		writeJSON(stdout, m.Languages())
		return 0

	case "generate":
		if *text == "" {
			return fail(stdout, "Text is required")
		}
		if *output == "" {
			return fail(stdout, "Output path is required")
		}

		m, err := registry.Resolve(*model, cfg.SynthConfig())
		if err != nil {
			return fail(stdout, err.Error())
		}

		result, err := m.Generate(ctx, engine.GenerateRequest{
			Text:       *text,
			Language:   *language,
			OutputPath: *output,
			RefAudio:   *refAudio,
			RefText:    *refText,
			Instruct:   *instruct,
			Speed:      *speed,
			Progress:   progress.NewReporter(stderr),
		})
		if err != nil {
			return fail(stdout, err.Error())
		}
		writeJSON(stdout, result)
		return 0

	default:
		return fail(stdout, fmt.Sprintf("unknown action %q", *action))
	}
}

// fail prints a JSON error object on stdout and returns the failure exit
// code. stdout always carries one valid JSON value, even on bad input.
func fail(w io.Writer, msg string) int {
	writeJSON(w, errorResult{Success: false, Error: msg})
	return 1
}

func writeJSON(w io.Writer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, `{"success":false,"error":%q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(w, string(b))
}
