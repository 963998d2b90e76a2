package progress

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReportWritesLineDelimitedJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Report("loading", 10, "Loading model...")
	r.Report("processing", 30, "Generating audio...")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var ev Event
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if ev.Type != "progress" {
		t.Errorf("type = %q, want progress", ev.Type)
	}
	if ev.Data.Stage != "loading" || ev.Data.Percent != 10 {
		t.Errorf("data = %+v, want stage=loading percent=10", ev.Data)
	}
	if ev.Data.Message != "Loading model..." {
		t.Errorf("message = %q", ev.Data.Message)
	}
}

func TestNilReporterIsSafe(t *testing.T) {
	var r *Reporter
	r.Report("loading", 10, "should not panic")

	r = NewReporter(nil)
	r.Report("loading", 10, "should not panic either")
}
