package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// 播放列表数 × 每次拉取条数的组合很少，128 足够
const sharedCacheSize = 128

type cacheEntry struct {
	value   interface{}
	expires time.Time
}

// Cache 带过期时间的 LRU，目前只缓存 YouTube 播放列表
type Cache struct {
	entries *lru.Cache[string, cacheEntry]
}

func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

var (
	sharedCache     *Cache
	sharedCacheOnce sync.Once
)

// GetCache 进程内共享的缓存
func GetCache() *Cache {
	sharedCacheOnce.Do(func() {
		c, err := NewCache(sharedCacheSize)
		if err != nil {
			log.Fatalf("Failed to create cache: %v", err)
		}
		sharedCache = c
	})
	return sharedCache
}

// Set ttl <= 0 时不缓存
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.entries.Add(key, cacheEntry{value: value, expires: Now().Add(ttl)})
}

func (c *Cache) Get(key string) (interface{}, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if !Now().Before(e.expires) {
		c.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Purge() {
	c.entries.Purge()
}
