package render

import (
	"context"
	"testing"

	"github.com/flowbench/flowbench/pkg/cache"
)

func TestCachedSVGHit(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	dot := "graph G { 0 -- 1; }\n"
	key := cache.Key("svg", cache.Hash([]byte(dot)))
	if err := c.Set(ctx, key, []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	svg, cached, err := CachedSVG(ctx, c, dot, 0)
	if err != nil {
		t.Fatalf("CachedSVG: %v", err)
	}
	if !cached {
		t.Error("expected a cache hit")
	}
	if string(svg) != "<svg/>" {
		t.Errorf("svg = %q, want cached bytes", svg)
	}
}
