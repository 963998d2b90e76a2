package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ummjevel/eclo/internal/audio"
)

func runCLI(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String()
}

func decodeError(t *testing.T, stdout string) errorResult {
	t.Helper()
	var res errorResult
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, stdout)
	}
	return res
}

func TestMissingInput(t *testing.T) {
	code, stdout := runCLI(t, "--output", "/tmp/out.mp3", "--format", "mp3")
	if code == 0 {
		t.Fatal("exit code should be non-zero")
	}
	res := decodeError(t, stdout)
	if res.Success || res.Error != "Input path is required" {
		t.Errorf("result = %+v", res)
	}
}

func TestMissingOutput(t *testing.T) {
	code, stdout := runCLI(t, "--input", "/tmp/in.wav", "--format", "mp3")
	if code == 0 {
		t.Fatal("exit code should be non-zero")
	}
	res := decodeError(t, stdout)
	if res.Success || res.Error != "Output path is required" {
		t.Errorf("result = %+v", res)
	}
}

func TestMissingFormat(t *testing.T) {
	code, stdout := runCLI(t, "--input", "/tmp/in.wav", "--output", "/tmp/out.mp3")
	if code == 0 {
		t.Fatal("exit code should be non-zero")
	}
	res := decodeError(t, stdout)
	if res.Success || res.Error != "Output format is required" {
		t.Errorf("result = %+v", res)
	}
}

func TestMissingFFmpegStillPrintsJSON(t *testing.T) {
	t.Setenv("ECLO_FFMPEG_BIN", "eclo-test-no-such-ffmpeg")
	dir := t.TempDir()

	code, stdout := runCLI(t,
		"--input", filepath.Join(dir, "in.wav"),
		"--output", filepath.Join(dir, "out.mp3"),
		"--format", "mp3")
	if code == 0 {
		t.Fatal("exit code should be non-zero")
	}

	var res audio.ConvertResult
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, stdout)
	}
	if res.Success {
		t.Error("success should be false")
	}
	if !strings.Contains(res.Error, "ffmpeg not installed") {
		t.Errorf("error = %q, want install instruction", res.Error)
	}
}
