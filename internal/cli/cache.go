package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowbench/flowbench/pkg/cache"
)

// cacheDir returns the default render cache directory.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "flowbench"), nil
}

// openCache constructs a cache backend from its name. Supported backends
// are "file" (default), "redis", and "none".
func openCache(ctx context.Context, backend, dir, addr string) (cache.Cache, error) {
	switch backend {
	case "", "file":
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, fmt.Errorf("get cache dir: %w", err)
			}
		}
		c, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "redis":
		c, err := cache.NewRedisCache(ctx, addr)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (file, redis, none)", backend)
	}
}

// newCacheCmd creates the cache management command.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(newCacheClearCmd())
	cmd.AddCommand(newCachePathCmd())

	return cmd
}

// newCacheClearCmd creates the "cache clear" subcommand.
func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			c, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			defer c.Close()

			prog := newProgress(loggerFromContext(cmd.Context()))
			if err := c.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared render cache")
			printDetail("Directory: %s", dir)
			prog.done("Cache cleared")
			return nil
		},
	}
}

// newCachePathCmd creates the "cache path" subcommand.
func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// cacheTTL converts a TTL in hours to a duration; zero means no expiration.
func cacheTTL(hours int) time.Duration {
	return time.Duration(hours) * time.Hour
}
