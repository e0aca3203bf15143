package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Profile is a TOML-backed preset for the generate and render commands. A
// profile file carries the same settings as the command-line flags; flags
// set explicitly on the command line win over profile values. The [generate]
// and [output] sections feed generate, the [cache] section feeds render.
//
// Example profile:
//
//	[generate]
//	pool = ["browne", "mixed"]
//	steps = [1, 3, 5]
//	merge_width = 1
//	input_caps = [2, 2]
//	randomized = true
//	seed = 42
//
//	[output]
//	dir = "out"
//
//	[cache]
//	backend = "file"
//	addr = "localhost:6379"
//	ttl_hours = 24
type Profile struct {
	Generate GenerateProfile `toml:"generate"`
	Output   OutputProfile   `toml:"output"`
	Cache    CacheProfile    `toml:"cache"`
}

// GenerateProfile mirrors the generate command's flags.
type GenerateProfile struct {
	Pool       []string `toml:"pool"`
	Steps      []int    `toml:"steps"`
	MergeWidth int      `toml:"merge_width"`
	InputCaps  []int    `toml:"input_caps"`
	Randomized bool     `toml:"randomized"`
	Seed       int64    `toml:"seed"`
}

// OutputProfile configures where generated files land.
type OutputProfile struct {
	Dir string `toml:"dir"`
}

// CacheProfile configures the render cache backend.
type CacheProfile struct {
	Backend  string `toml:"backend"` // "file", "redis", or "none"
	Dir      string `toml:"dir"`     // file backend directory
	Addr     string `toml:"addr"`    // redis backend address
	TTLHours int    `toml:"ttl_hours"`
}

// loadProfile reads and parses a TOML profile file.
func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
