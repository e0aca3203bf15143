package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
[generate]
pool = ["browne", "mixed"]
steps = [1, 3, 5]
merge_width = 1
input_caps = [2, 2]
randomized = true
seed = 7

[output]
dir = "batch"

[cache]
backend = "redis"
addr = "cache.local:6379"
ttl_hours = 48
`)

	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}

	if !slices.Equal(p.Generate.Pool, []string{"browne", "mixed"}) {
		t.Errorf("pool = %v", p.Generate.Pool)
	}
	if !slices.Equal(p.Generate.Steps, []int{1, 3, 5}) {
		t.Errorf("steps = %v", p.Generate.Steps)
	}
	if p.Generate.MergeWidth != 1 || !p.Generate.Randomized || p.Generate.Seed != 7 {
		t.Errorf("generate section = %+v", p.Generate)
	}
	if p.Output.Dir != "batch" {
		t.Errorf("output dir = %q", p.Output.Dir)
	}
	if p.Cache.Backend != "redis" || p.Cache.Addr != "cache.local:6379" || p.Cache.TTLHours != 48 {
		t.Errorf("cache section = %+v", p.Cache)
	}
}

func TestApplyCacheProfile(t *testing.T) {
	path := writeProfile(t, `
[cache]
backend = "redis"
addr = "cache.local:6379"
ttl_hours = 48
`)
	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}

	cmd := newRenderCmd()
	opts := renderOpts{format: "svg", backend: "file", ttlHours: 24}
	applyCacheProfile(cmd, &opts, p)

	if opts.backend != "redis" {
		t.Errorf("backend = %q, want redis", opts.backend)
	}
	if opts.addr != "cache.local:6379" {
		t.Errorf("addr = %q", opts.addr)
	}
	if opts.ttlHours != 48 {
		t.Errorf("ttlHours = %d, want 48", opts.ttlHours)
	}
}

func TestApplyCacheProfileFlagWins(t *testing.T) {
	p := &Profile{Cache: CacheProfile{Backend: "redis", TTLHours: 48}}

	cmd := newRenderCmd()
	if err := cmd.Flags().Set("cache", "none"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	opts := renderOpts{format: "svg", backend: "none", ttlHours: 24}
	applyCacheProfile(cmd, &opts, p)

	if opts.backend != "none" {
		t.Errorf("backend = %q, explicit flag should win", opts.backend)
	}
	if opts.ttlHours != 48 {
		t.Errorf("ttlHours = %d, unset flag should take the profile value", opts.ttlHours)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := loadProfile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("loadProfile should fail on a missing file")
	}
}

func TestLoadProfileMalformed(t *testing.T) {
	path := writeProfile(t, "[generate\npool = ")
	if _, err := loadProfile(path); err == nil {
		t.Error("loadProfile should fail on malformed TOML")
	}
}
