package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `name: news-ranking
description: Online ranking loop for the news page
requires: ">=1.0.0"
model:
  key: VW
trace_logger:
  key: CONSOLE_TRACE_LOGGER
senders:
  - key: OBSERVATION_FILE_SENDER
  - key: INTERACTION_FILE_SENDER
options:
  observation.file.name: obs.dat
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if m.Name != "news-ranking" {
		t.Fatalf("Name = %q, want %q", m.Name, "news-ranking")
	}
	if m.Model == nil || m.Model.Key != "VW" {
		t.Fatalf("Model = %+v, want key VW", m.Model)
	}
	if m.TraceLogger == nil || m.TraceLogger.Key != "CONSOLE_TRACE_LOGGER" {
		t.Fatalf("TraceLogger = %+v, want key CONSOLE_TRACE_LOGGER", m.TraceLogger)
	}
	if len(m.Senders) != 2 || m.Senders[0].Key != "OBSERVATION_FILE_SENDER" {
		t.Fatalf("Senders = %+v", m.Senders)
	}
	if m.Transport != nil {
		t.Fatalf("Transport = %+v, want nil", m.Transport)
	}
	if m.Options["observation.file.name"] != "obs.dat" {
		t.Fatalf("Options = %+v", m.Options)
	}
}

func TestParseRejectsMissingName(t *testing.T) {
	if _, err := Parse([]byte("model:\n  key: VW\n")); err == nil {
		t.Fatal("Parse accepted a manifest without a name")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unclosed")); err == nil {
		t.Fatal("Parse accepted malformed YAML")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.yaml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	m, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if m.Name != "news-ranking" {
		t.Fatalf("Name = %q", m.Name)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("ParseFile succeeded for a missing file")
	}
}
