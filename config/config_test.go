package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level: got=%q want=%q", cfg.LogLevel, "info")
	}
	if cfg.Sweep.MinBits != 10 || cfg.Sweep.MaxBits != 521 {
		t.Fatalf("sweep range: got=%d..%d want=10..521", cfg.Sweep.MinBits, cfg.Sweep.MaxBits)
	}
	if cfg.Sweep.OutDir != "." {
		t.Fatalf("out dir: got=%q want=%q", cfg.Sweep.OutDir, ".")
	}
	want := []int{256, 384, 521}
	if len(cfg.Fixed.Sizes) != len(want) {
		t.Fatalf("fixed sizes: got=%v want=%v", cfg.Fixed.Sizes, want)
	}
	for i := range want {
		if cfg.Fixed.Sizes[i] != want[i] {
			t.Fatalf("fixed sizes: got=%v want=%v", cfg.Fixed.Sizes, want)
		}
	}
	if cfg.Fixed.TableDir != "" {
		t.Fatalf("fixed phase enabled by default: table_dir=%q", cfg.Fixed.TableDir)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: debug
sweep:
  min_bits: 16
  max_bits: 64
  workers: 3
  out_dir: out
fixed:
  sizes: [256]
  table_dir: tables
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level: got=%q want=%q", cfg.LogLevel, "debug")
	}
	if cfg.Sweep.MinBits != 16 || cfg.Sweep.MaxBits != 64 || cfg.Sweep.Workers != 3 {
		t.Fatalf("sweep overrides not applied: %+v", cfg.Sweep)
	}
	if cfg.Sweep.OutDir != "out" {
		t.Fatalf("out dir: got=%q want=%q", cfg.Sweep.OutDir, "out")
	}
	if len(cfg.Fixed.Sizes) != 1 || cfg.Fixed.Sizes[0] != 256 || cfg.Fixed.TableDir != "tables" {
		t.Fatalf("fixed overrides not applied: %+v", cfg.Fixed)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("sweep:\n  max_bits: 128\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sweep.MinBits != 10 {
		t.Fatalf("min bits default lost: got=%d", cfg.Sweep.MinBits)
	}
	if cfg.Sweep.MaxBits != 128 {
		t.Fatalf("max bits override lost: got=%d", cfg.Sweep.MaxBits)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level default lost: got=%q", cfg.LogLevel)
	}
}

func TestValidateRejections(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		frag string
	}{
		{"log level", "log_level: loud\n", "log_level"},
		{"min bits", "sweep:\n  min_bits: 1\n", "min_bits"},
		{"inverted range", "sweep:\n  min_bits: 64\n  max_bits: 32\n", "max_bits"},
		{"negative workers", "sweep:\n  workers: -1\n", "workers"},
		{"empty out dir", "sweep:\n  out_dir: \"\"\n", "out_dir"},
		{"tiny fixed size", "fixed:\n  sizes: [256, 1]\n", "fixed.sizes"},
	} {
		_, err := Parse([]byte(tc.yaml))
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.frag) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.frag)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level: got=%q want=%q", cfg.LogLevel, "warn")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("sweep: [not a map\n")); err == nil {
		t.Fatalf("expected parse error")
	}
}
