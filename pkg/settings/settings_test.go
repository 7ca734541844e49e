package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFromMissingFile(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "does_not_exist.json"))
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if s.ServerURL == "" {
		t.Error("default server URL must not be empty")
	}
	if s.WindowTitle == "" {
		t.Error("default window title must not be empty")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	in := &Settings{ServerURL: "http://render.local:9090", WindowTitle: "Tracer"}
	if err := in.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	out, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if out.ServerURL != in.ServerURL || out.WindowTitle != in.WindowTitle {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestLoadSettingsFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"serverUrl":"http://render.local:9090"}`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if out.ServerURL != "http://render.local:9090" {
		t.Errorf("server URL not honored: %q", out.ServerURL)
	}
	if out.WindowTitle == "" {
		t.Error("fields absent from the file should keep their defaults")
	}
}
