package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/curator/internal/store"
)

// Store backend types selectable via --store-type.
const (
	storeTypeMemory = "memory"
	storeTypeFile   = "file"
	storeTypeRedis  = "redis"
)

// storeOptions holds the storage backend flags shared by serve and ingest.
type storeOptions struct {
	storeType      string
	stateDir       string
	redisAddr      string
	redisPassword  string
	redisDB        int
	redisKeyPrefix string
}

func (o *storeOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.storeType, "store-type", storeTypeFile, "Storage backend: memory, file or redis")
	cmd.Flags().StringVar(&o.stateDir, "state-dir", "", "Directory for the file store (default: user config dir, e.g. ~/.config/curator)")
	cmd.Flags().StringVar(&o.redisAddr, "redis-addr", "localhost:6379", "Redis server address (for --store-type redis)")
	cmd.Flags().StringVar(&o.redisPassword, "redis-password", "", "Redis authentication password")
	cmd.Flags().IntVar(&o.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&o.redisKeyPrefix, "redis-key-prefix", store.DefaultKeyPrefix, "Prefix for all redis keys")
}

// newStore builds the storage backend selected by the flags.
func newStore(ctx context.Context, opts storeOptions) (store.Store, error) {
	switch opts.storeType {
	case storeTypeMemory:
		return store.NewMemoryStore(), nil
	case storeTypeFile:
		dir := opts.stateDir
		if dir == "" {
			dir = store.DefaultStateDir()
		}
		return store.NewFileStore(dir)
	case storeTypeRedis:
		return store.NewRedisStore(ctx, store.RedisOptions{
			Addr:      opts.redisAddr,
			Password:  opts.redisPassword,
			DB:        opts.redisDB,
			KeyPrefix: opts.redisKeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unsupported store type: %s (supported: memory, file, redis)", opts.storeType)
	}
}
