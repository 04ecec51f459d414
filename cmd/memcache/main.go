package main

import (
	"fmt"
	"os"
	"time"

	cache "github.com/krisalay/memory-cache"
	"github.com/krisalay/memory-cache/engine"
	"github.com/spf13/cobra"
)

/*
memcache is the command-line surface of the cache.

Each subcommand translates directly into ONE core call:

	memcache insert -k KEY -v VALUE -t SECONDS   → Insert
	memcache get -k KEY                          → Get
	memcache invalidate -k KEY                   → Invalidate

Argument validation lives entirely here, at the boundary. The core operations
are total: malformed input (missing key, negative ttl) must be rejected
before a core call is ever made, and it exits non-zero as a usage error.
*/

func newCache() *cache.MemoryCache {
	// Defaults only: fixed write deadline, no loader, no write policy,
	// no metrics, wall clock.
	return cache.NewMemoryCache(engine.NewCacheEngine(nil, nil, nil, nil, nil, nil))
}

func newInsertCmd() *cobra.Command {
	var (
		key   string
		value string
		ttl   int64
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "does an insert into the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl < 0 {
				return fmt.Errorf("ttl must be non-negative, got %d", ttl)
			}

			c := newCache()
			defer c.Close()

			if err := c.Insert(cmd.Context(), key, value, time.Duration(ttl)*time.Second); err != nil {
				return err
			}
			fmt.Printf("Inserted key '%s'\n", key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key to insert")
	cmd.Flags().StringVarP(&value, "value", "v", "", "value to store")
	cmd.Flags().Int64VarP(&ttl, "ttl", "t", 30, "time-to-live in seconds")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newGetCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "reads a key from the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newCache()
			defer c.Close()

			val, err := c.Get(cmd.Context(), key)
			if err != nil {
				return err
			}

			if v, ok := val.Get(); ok {
				fmt.Printf("Value for key '%s': %s\n", key, v)
			} else {
				fmt.Printf("No value found for key '%s'\n", key)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key to look up")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newInvalidateCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "removes a key from the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newCache()
			defer c.Close()

			c.Invalidate(key)
			fmt.Printf("Invalidated key '%s'\n", key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key to invalidate")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "memcache",
		Short:         "Tis a tool for caching",
		SilenceUsage:  false,
		SilenceErrors: false,
	}

	root.AddCommand(newInsertCmd(), newGetCmd(), newInvalidateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
