package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/flowbench/flowbench/pkg/cache"
)

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// CachedSVG renders a DOT graph to SVG, consulting c first. The cache key is
// derived from the DOT source, so any change to the graph or its styling
// produces a fresh render. The second return value reports whether the
// result came from the cache.
func CachedSVG(ctx context.Context, c cache.Cache, dot string, ttl time.Duration) ([]byte, bool, error) {
	key := cache.Key("svg", cache.Hash([]byte(dot)))

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	svg, err := SVG(ctx, dot)
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, svg, ttl); err != nil {
		return nil, false, fmt.Errorf("cache render: %w", err)
	}
	return svg, false, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element to a zero-origin viewBox
// with explicit pixel dimensions, which embeds cleanly in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
