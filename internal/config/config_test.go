package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/note-editor/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := app.Config{ShowFooter: true}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"-width", "80", "-height", "24", "-tags", "Work, Home,,", "-new", "-trace", "-verbose", "-log-file", "x.log", "-footer=false"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := app.Config{
		Width:    80,
		Height:   24,
		Tags:     []string{"Work", "Home"},
		StartNew: true,
		Verbose:  true,
	}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "x.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if !cfg.Features.Verbose {
		t.Fatalf("expected verbose feature")
	}
	if cfg.Flags["tags"] != "Work, Home,," || cfg.Flags["new"] != "true" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
	if diff := cmp.Diff(args, cfg.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"NOTE_EDITOR_WIDTH=100",
		"NOTE_EDITOR_TAGS=a,b",
		"NOTE_EDITOR_NEW=1",
		"NOTE_EDITOR_TRACE=true",
		"NOTE_EDITOR_LOG_FILE=/tmp/n.log",
		"NOTE_EDITOR_HEIGHT=not-a-number",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 0 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if diff := cmp.Diff([]string{"a", "b"}, cfg.App.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if !cfg.App.StartNew || !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/n.log" {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "50"}, []string{"NOTE_EDITOR_WIDTH=100"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Width != 50 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	for _, args := range [][]string{{"-width", "-1"}, {"-height", "-5"}} {
		if _, err := LoadArgs(args, nil); err == nil || !strings.Contains(err.Error(), ">= 0") {
			t.Fatalf("expected size error for %v, got %v", args, err)
		}
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateRejectsDuplicateSeedTags(t *testing.T) {
	cfg := Config{App: app.Config{Tags: []string{"Work", "work"}}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate tag error")
	}
	cfg.App.Tags = []string{"Work", "Home"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
