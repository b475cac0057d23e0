package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dispatchbench.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Size != 10000 {
		t.Errorf("Size = %d, want 10000", cfg.Size)
	}
	if cfg.MaxKinds != 5 {
		t.Errorf("MaxKinds = %d, want 5", cfg.MaxKinds)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
size: 2048
max_kinds: 12
seed: 99
groups: [class, shuffle]
bench: "_1[0-2]$"
benchtime: 250ms
json: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Size != 2048 {
		t.Errorf("Size = %d, want 2048", cfg.Size)
	}
	if cfg.MaxKinds != 12 {
		t.Errorf("MaxKinds = %d, want 12", cfg.MaxKinds)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if len(cfg.Groups) != 2 || cfg.Groups[1] != "shuffle" {
		t.Errorf("Groups = %v, want [class shuffle]", cfg.Groups)
	}
	if cfg.Bench != "_1[0-2]$" {
		t.Errorf("Bench = %q, want %q", cfg.Bench, "_1[0-2]$")
	}
	if cfg.BenchTime != 250*time.Millisecond {
		t.Errorf("BenchTime = %s, want 250ms", cfg.BenchTime)
	}
	if !cfg.JSON {
		t.Error("JSON = false, want true")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "seed: 5\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 5 {
		t.Errorf("Seed = %d, want 5", cfg.Seed)
	}
	if cfg.BenchTime != time.Second {
		t.Errorf("BenchTime = %s, want 1s", cfg.BenchTime)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := Load(writeConfig(t, "size: [not, a, number]\n")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestMergeOnlyChangedFlags(t *testing.T) {
	base, err := Load(writeConfig(t, "size: 300\nseed: 7\nmax_kinds: 9\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var flagged Config

	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flagged.Flags(fs)

	if err := fs.Parse([]string{"--seed", "11", "--groups", "tail"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := Merge(base, flagged, fs)

	if cfg.Size != 300 {
		t.Errorf("Size = %d, want 300 from file", cfg.Size)
	}
	if cfg.MaxKinds != 9 {
		t.Errorf("MaxKinds = %d, want 9 from file", cfg.MaxKinds)
	}
	if cfg.Seed != 11 {
		t.Errorf("Seed = %d, want 11 from flag", cfg.Seed)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0] != "tail" {
		t.Errorf("Groups = %v, want [tail]", cfg.Groups)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero size", func(c *Config) { c.Size = 0 }, true},
		{"zero kinds", func(c *Config) { c.MaxKinds = 0 }, true},
		{"too many kinds", func(c *Config) { c.MaxKinds = 21 }, true},
		{"all kinds", func(c *Config) { c.MaxKinds = 20 }, false},
		{"negative benchtime", func(c *Config) { c.BenchTime = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultRoundTripsThroughYAML(t *testing.T) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	cfg, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Size != Default().Size || cfg.BenchTime != Default().BenchTime {
		t.Errorf("round trip = %+v, want %+v", cfg, Default())
	}
}
