package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flowbench/flowbench/pkg/blocks"
	"github.com/flowbench/flowbench/pkg/opengraph"
)

// parseIntList parses a comma-separated list of integers ("1,3,5").
// Whitespace around the entries is ignored; an empty string yields nil.
func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", strings.TrimSpace(p))
		}
		out = append(out, n)
	}
	return out, nil
}

// parsePool resolves a comma-separated list of block names ("browne,mixed")
// against the block registry. An empty string yields the default pool.
func parsePool(s string) ([]*opengraph.OpenGraph, error) {
	if strings.TrimSpace(s) == "" {
		return blocks.DefaultPool(), nil
	}

	var pool []*opengraph.OpenGraph
	for _, name := range strings.Split(s, ",") {
		block, err := blocks.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("%w (known blocks: %s)", err, strings.Join(blocks.Names(), ", "))
		}
		pool = append(pool, block)
	}
	return pool, nil
}

// parseBlock resolves a single block name, defaulting to "browne".
func parseBlock(s string) (*opengraph.OpenGraph, error) {
	if strings.TrimSpace(s) == "" {
		s = "browne"
	}
	block, err := blocks.Lookup(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w (known blocks: %s)", err, strings.Join(blocks.Names(), ", "))
	}
	return block, nil
}
