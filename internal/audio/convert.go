// Package audio wraps the external ffmpeg binary for format conversion and
// provides the WAV plumbing shared by the helper binaries.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pitabwire/util"
	"github.com/rs/xid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ConvertRequest describes a single conversion. Format is the requested
// target; unrecognized values fall back to wav.
type ConvertRequest struct {
	Input  string
	Output string
	Format string
}

// ConvertResult is the JSON object printed on stdout.
type ConvertResult struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path,omitempty"`
	Format     string `json:"format,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Converter transcodes audio files by delegating to ffmpeg.
type Converter struct {
	FFmpegBin string
}

// NewConverter creates a converter using the given ffmpeg binary.
func NewConverter(ffmpegBin string) *Converter {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	return &Converter{FFmpegBin: ffmpegBin}
}

// Convert decodes the input and re-encodes it as the target format. Failures
// never escape as errors; they come back as a Success=false result so the
// caller always has a JSON object to print. Single attempt, no retries.
func (c *Converter) Convert(ctx context.Context, req ConvertRequest) ConvertResult {
	if _, err := exec.LookPath(c.FFmpegBin); err != nil {
		return ConvertResult{
			Success: false,
			Error:   "ffmpeg not installed. Install with: brew install ffmpeg",
		}
	}

	format, args := exportArgs(req.Format)

	// Encode into a uniquely named sibling file first so the host never
	// observes a half-written output.
	dir := filepath.Dir(req.Output)
	tmp := filepath.Join(dir, ".eclo-"+xid.New().String()+"."+format)

	slog.DebugContext(ctx, "converting audio",
		slog.String("input", req.Input),
		slog.String("format", format))

	var stderr bytes.Buffer
	err := ffmpeg.Input(req.Input).
		Output(tmp, args).
		OverWriteOutput().
		WithErrorOutput(&stderr).
		Silent(true).
		SetFfmpegPath(c.FFmpegBin).
		Run()
	if err != nil {
		os.Remove(tmp)
		util.Log(ctx).WithError(err).Error("ffmpeg conversion failed")
		return ConvertResult{Success: false, Error: ffmpegError(err, stderr.String())}
	}

	if err := os.Rename(tmp, req.Output); err != nil {
		os.Remove(tmp)
		return ConvertResult{Success: false, Error: err.Error()}
	}

	return ConvertResult{
		Success:    true,
		OutputPath: req.Output,
		Format:     format,
	}
}

// exportArgs maps a requested format to ffmpeg export arguments. Anything
// unrecognized exports as wav.
func exportArgs(format string) (string, ffmpeg.KwArgs) {
	switch strings.ToLower(format) {
	case "mp3":
		return "mp3", ffmpeg.KwArgs{"f": "mp3", "b:a": "192k"}
	case "ogg":
		return "ogg", ffmpeg.KwArgs{"f": "ogg", "c:a": "libvorbis"}
	case "flac":
		return "flac", ffmpeg.KwArgs{"f": "flac"}
	default:
		return "wav", ffmpeg.KwArgs{"f": "wav"}
	}
}

// ffmpegError passes the library failure through verbatim, trimmed to the
// last stderr lines where ffmpeg puts the actual reason.
func ffmpegError(err error, stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return err.Error()
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return fmt.Sprintf("%v: %s", err, strings.Join(lines, "\n"))
}
