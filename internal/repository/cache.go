package repository

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/model"
)

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// NewRedisClient connects to redis. A nil client is returned on failure and
// callers degrade by skipping the cache.
func NewRedisClient(cfg RedisConfig, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, cache disabled", zap.Error(err))
		return nil
	}
	return client
}

const (
	booksVersionKey = "books:ver"
	booksTTL        = time.Minute
	unreadTTL       = 5 * time.Minute
)

// Cache is a read-through cache for book listings and unread-notification
// counters. Every method is a no-op when redis is absent.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewCache(rdb *redis.Client, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, log: log.Named("cache")}
}

// booksKey namespaces listing keys with a version counter; bumping the
// version on any book write invalidates the whole namespace without SCAN.
func (c *Cache) booksKey(ctx context.Context, filter model.BookFilter) string {
	ver, err := c.rdb.Get(ctx, booksVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%s:%s:%v:%d:%d",
		filter.Genre, filter.OwnerUid, filter.CommunityUid, filter.OnlyAvailable, filter.Page, filter.Size)))
	return fmt.Sprintf("books:%d:%x", ver, sum[:8])
}

func (c *Cache) GetBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, bool) {
	if c.rdb == nil {
		return model.ListBooks{}, false
	}
	key := c.booksKey(ctx, filter)
	if key == "" {
		return model.ListBooks{}, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return model.ListBooks{}, false
	}
	var list model.ListBooks
	if err := json.Unmarshal(data, &list); err != nil {
		return model.ListBooks{}, false
	}
	return list, true
}

func (c *Cache) SetBooks(ctx context.Context, filter model.BookFilter, list model.ListBooks) {
	if c.rdb == nil {
		return
	}
	key := c.booksKey(ctx, filter)
	if key == "" {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, booksTTL).Err(); err != nil {
		c.log.Debug("SetBooks", zap.Error(err))
	}
}

func (c *Cache) InvalidateBooks(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, booksVersionKey).Err(); err != nil {
		c.log.Debug("InvalidateBooks", zap.Error(err))
	}
}

func unreadKey(userUid string) string { return "unread:" + userUid }

func (c *Cache) GetUnread(ctx context.Context, userUid string) (int64, bool) {
	if c.rdb == nil {
		return 0, false
	}
	val, err := c.rdb.Get(ctx, unreadKey(userUid)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Cache) SetUnread(ctx context.Context, userUid string, n int64) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, unreadKey(userUid), n, unreadTTL).Err(); err != nil {
		c.log.Debug("SetUnread", zap.Error(err))
	}
}

func (c *Cache) DropUnread(ctx context.Context, userUid string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, unreadKey(userUid)).Err(); err != nil {
		c.log.Debug("DropUnread", zap.Error(err))
	}
}
