// Command audioconvert converts an audio file between WAV, MP3, OGG and
// FLAC by delegating to ffmpeg, and prints one JSON result object on stdout
// for the Electron host.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ummjevel/eclo/config"
	"github.com/ummjevel/eclo/internal/audio"
)

type errorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("audioconvert", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "", "input audio file path")
	output := fs.String("output", "", "output audio file path")
	format := fs.String("format", "", "output format: mp3, ogg, flac or wav")

	if err := fs.Parse(args); err != nil {
		return fail(stdout, err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(stdout, err.Error())
	}
	cfg.SetupLogging()

	if *input == "" {
		return fail(stdout, "Input path is required")
	}
	if *output == "" {
		return fail(stdout, "Output path is required")
	}
	if *format == "" {
		return fail(stdout, "Output format is required")
	}

	converter := audio.NewConverter(cfg.FFmpegBin)
	result := converter.Convert(context.Background(), audio.ConvertRequest{
		Input:  *input,
		Output: *output,
		Format: *format,
	})

	writeJSON(stdout, result)
	if !result.Success {
		return 1
	}
	return 0
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
