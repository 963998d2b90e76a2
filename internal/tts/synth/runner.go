// Package synth runs the external mlx-audio synthesis CLI and normalizes
// its output file to the path the caller asked for.
package synth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pitabwire/util"

	"github.com/ummjevel/eclo/internal/audio"
	"github.com/ummjevel/eclo/pkg/progress"
)

// Runner invokes the synthesis library through the configured Python
// interpreter. The library lazy-loads model weights internally, so there is
// no load step here.
type Runner struct {
	PythonBin string
	Module    string
}

// NewRunner builds a runner from an adapter config map.
func NewRunner(config map[string]string) *Runner {
	python := config["python_bin"]
	if python == "" {
		python = "python3"
	}
	module := config["module"]
	if module == "" {
		module = "mlx_audio.tts.generate"
	}
	return &Runner{PythonBin: python, Module: module}
}

// Job describes one synthesis call.
type Job struct {
	Text     string
	Model    string
	RefAudio string
	RefText  string
	Speed    float64

	OutputPath string
	Progress   *progress.Reporter
}

// Synthesize generates speech and returns the final output path and its
// duration in seconds. The library writes `<prefix>_0.wav` (or close to it);
// whatever it produced is renamed to job.OutputPath.
func (r *Runner) Synthesize(ctx context.Context, job Job) (string, float64, error) {
	if _, err := exec.LookPath(r.PythonBin); err != nil {
		return "", 0, errors.New("mlx-audio not installed. Install with: pip install mlx-audio")
	}

	prefix := outputPrefix(job.OutputPath)

	args := []string{
		"-m", r.Module,
		"--model", job.Model,
		"--text", job.Text,
		"--file_prefix", prefix,
	}
	if job.RefAudio != "" {
		args = append(args, "--ref_audio", job.RefAudio)
	}
	if job.RefText != "" {
		args = append(args, "--ref_text", job.RefText)
	}
	if job.Speed != 0 && job.Speed != 1.0 {
		args = append(args, "--speed", strconv.FormatFloat(job.Speed, 'f', -1, 64))
	}

	cmd := exec.CommandContext(ctx, r.PythonBin, args...)

	// Capture both streams. The library prints resampling chatter on stdout;
	// inheriting it would corrupt the JSON contract on our stdout.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Generation can run for minutes. Report the saving stage as soon as the
	// library creates its output file, or after it exits, whichever first.
	var savingOnce sync.Once
	saving := func() {
		savingOnce.Do(func() {
			job.Progress.Report("saving", 80, "Saving audio file...")
		})
	}
	stopWatch := watchForOutput(ctx, prefix, saving)

	err := cmd.Run()
	stopWatch()
	if err != nil {
		util.Log(ctx).WithError(err).Error("synthesis process failed")
		return "", 0, synthError(err, stderr.String())
	}
	saving()

	slog.DebugContext(ctx, "synthesis finished",
		slog.String("model", job.Model),
		slog.Int("stdout_bytes", stdout.Len()))

	out, err := normalizeOutput(prefix, job.OutputPath)
	if err != nil {
		return "", 0, err
	}

	duration, err := audio.WAVDuration(out)
	if err != nil {
		return "", 0, fmt.Errorf("read generated audio: %w", err)
	}
	return out, duration, nil
}

// outputPrefix strips the extension from the requested output path; the
// library appends its own suffix and extension to this prefix.
func outputPrefix(outputPath string) string {
	dir := filepath.Dir(outputPath)
	base := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	return filepath.Join(dir, base)
}

// normalizeOutput finds whatever file the library produced and renames it to
// the requested path. The expected name is `<prefix>_0.wav`, but the suffix
// convention has changed between library releases, so fall back to globbing.
func normalizeOutput(prefix, want string) (string, error) {
	actual := prefix + "_0.wav"
	if _, err := os.Stat(actual); err != nil {
		if matches, _ := filepath.Glob(prefix + "*.wav"); len(matches) > 0 {
			actual = matches[0]
		}
	}

	if _, err := os.Stat(actual); err != nil {
		stray, _ := filepath.Glob(filepath.Join(filepath.Dir(prefix), "eclo_*.wav"))
		return "", fmt.Errorf(
			"audio generation failed - output file not created. Checked: %s, Found: %v",
			prefix+"_0.wav", stray)
	}

	if actual != want {
		if err := os.Rename(actual, want); err != nil {
			return "", fmt.Errorf("rename output: %w", err)
		}
	}
	return want, nil
}

// watchForOutput watches the output directory and calls notify when a file
// matching the prefix appears. Best-effort: watch failures just mean the
// saving stage is reported late.
func watchForOutput(ctx context.Context, prefix string, notify func()) (stop func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return func() {}
	}
	if err := watcher.Add(filepath.Dir(prefix)); err != nil {
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) &&
					strings.HasPrefix(event.Name, prefix) &&
					strings.HasSuffix(event.Name, ".wav") {
					notify()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return func() { close(done) }
}

// synthError passes the library failure through with the tail of its stderr,
// which is where Python puts the actual exception.
func synthError(err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return err
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > 6 {
		lines = lines[len(lines)-6:]
	}
	return fmt.Errorf("%v: %s", err, strings.Join(lines, "\n"))
}
