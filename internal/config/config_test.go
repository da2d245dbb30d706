package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Single() || !cfg.Mixture() {
		t.Error("expected both batches by default")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-t", "1", "-n", "10", "-o", "/tmp/out", "-z", "0", "-f", "jpg",
		"-l", "1.5", "-c", "0.5", "-s", "200", "-b", "20",
		"-loc2", "90", "-size1", "7", "-sampler", "boxmuller",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Mode = ModeSingle
	want.Number = 10
	want.Out = "/tmp/out"
	want.ZeroFill = 0
	want.Format = "jpg"
	want.Loc = 1.5
	want.Scale = 0.5
	want.Size = 200
	want.Bins = 20
	want.Loc2 = 90
	want.Size1 = 7
	want.Sampler = SamplerBoxMuller
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Single() || cfg.Mixture() {
		t.Error("expected only the single batch")
	}
}

func TestParseModes(t *testing.T) {
	tests := map[string]Mode{
		"1":       ModeSingle,
		"single":  ModeSingle,
		"2":       ModeMixture,
		"mixture": ModeMixture,
		"both":    ModeBoth,
	}
	for arg, want := range tests {
		cfg, err := Parse([]string{"-type", arg})
		if err != nil {
			t.Fatalf("%s: %v", arg, err)
		}
		if cfg.Mode != want {
			t.Errorf("%s: expected %s, got %s", arg, want, cfg.Mode)
		}
	}
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "histgen.yaml")
	data := []byte("type: 2\nnumber: 5\nformat: tiff\nloc1: 10.5\nbins: 30\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse([]string{"-config", path, "-bins", "40"})
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.File = path
	want.Mode = ModeMixture
	want.Number = 5
	want.Format = "tiff"
	want.Loc1 = 10.5
	want.Bins = 40
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := [][]string{
		{"-n", "-1"},
		{"-z", "-2"},
		{"-size2", "-5"},
		{"-width", "0"},
		{"-sampler", "ziggurat"},
	}
	for _, args := range tests {
		if _, err := Parse(args); !errors.Is(err, ErrInvalid) {
			t.Errorf("%v: expected ErrInvalid, got %v", args, err)
		}
	}
}

func TestParseBadMode(t *testing.T) {
	fs := []string{"-type", "3"}
	if _, err := Parse(fs); err == nil {
		t.Error("expected an error for an unknown type")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("number: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
