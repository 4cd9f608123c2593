package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"eca/internal/core"
	_ "eca/internal/sims/elementary"
)

func TestBindAndBuild(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("sim: elementary\noptions:\n  w: 40\n  h: 10\n  rule: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-options", path, "-scale", "2", "-rate", "12"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 2 || cfg.Rate != 12 {
		t.Fatalf("flags not bound: %+v", cfg)
	}

	sim, err := cfg.Build(fs)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 40, H: 10}) {
		t.Fatalf("size = %+v", sim.Size())
	}
}

func TestBuildUnknownSim(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "nope"}); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Build(fs); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestBuildMissingOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Options = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.Build(flag.NewFlagSet("ca", flag.ContinueOnError)); err == nil {
		t.Fatal("expected error for missing options file")
	}
}
