package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKnobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	data := "max_items: 5\nsettle_delay_ms: 120\nmax_width: 32\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	k, err := loadKnobs(path)
	if err != nil {
		t.Fatalf("loadKnobs: %v", err)
	}
	if k.MaxItems != 5 || k.SettleDelayMS != 120 || k.MaxWidth != 32 {
		t.Fatalf("knobs: got %+v", k)
	}
}

func TestLoadKnobs_EmptyPathUsesDefaults(t *testing.T) {
	k, err := loadKnobs("")
	if err != nil {
		t.Fatalf("loadKnobs: %v", err)
	}
	if k != (knobs{}) {
		t.Fatalf("empty path must return zero knobs, got %+v", k)
	}
}

func TestLoadKnobs_Errors(t *testing.T) {
	if _, err := loadKnobs("does-not-exist.yaml"); err == nil {
		t.Fatalf("missing file must error")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("max_items: -3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadKnobs(path); err == nil {
		t.Fatalf("negative knob must error")
	}

	if err := os.WriteFile(path, []byte("max_items: [oops\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadKnobs(path); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}
