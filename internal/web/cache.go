package web

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gorewood/readmegen/internal/profile"
	"github.com/gorewood/readmegen/internal/readme"
)

const defaultCacheSize = 128

// renderCache memoizes rendered markdown keyed by profile content and
// render options. It is safe for concurrent use.
type renderCache struct {
	entries *lru.Cache[string, string]
	metrics *Metrics
}

func newRenderCache(size int, metrics *Metrics) (*renderCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	entries, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	return &renderCache{entries: entries, metrics: metrics}, nil
}

// build returns the cached markdown for d and opts, rendering on a miss.
func (c *renderCache) build(d profile.Data, opts readme.Options) string {
	key, err := cacheKey(d, opts)
	if err != nil {
		return opts.Build(d)
	}
	if markdown, ok := c.entries.Get(key); ok {
		c.metrics.observeCache(true)
		return markdown
	}
	c.metrics.observeCache(false)
	markdown := opts.Build(d)
	c.entries.Add(key, markdown)
	return markdown
}

func (c *renderCache) len() int {
	return c.entries.Len()
}

func cacheKey(d profile.Data, opts readme.Options) (string, error) {
	payload, err := json.Marshal(struct {
		Profile profile.Data   `json:"p"`
		Options readme.Options `json:"o"`
	}{profile.Normalize(d), opts})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
