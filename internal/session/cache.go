// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pdiddy/quickcite/pkg/types"
)

const defaultTTL = 10 * time.Minute

// citationCache holds rendered citations keyed by quote ID, style and form.
type citationCache struct {
	cache *gocache.Cache
}

func newCitationCache(ttl time.Duration) *citationCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &citationCache{cache: gocache.New(ttl, 2*ttl)}
}

type form string

const (
	formFull   form = "full"
	formInText form = "intext"
)

func cacheKey(id string, style types.Style, f form) string {
	return id + "/" + string(style) + "/" + string(f)
}

func (c *citationCache) get(id string, style types.Style, f form) (string, bool) {
	if v, found := c.cache.Get(cacheKey(id, style, f)); found {
		return v.(string), true
	}
	return "", false
}

func (c *citationCache) set(id string, style types.Style, f form, citation string) {
	c.cache.SetDefault(cacheKey(id, style, f), citation)
}

// invalidate drops every cached citation for id.
func (c *citationCache) invalidate(id string) {
	for _, style := range types.AllStyles {
		c.cache.Delete(cacheKey(id, style, formFull))
		c.cache.Delete(cacheKey(id, style, formInText))
	}
}

func (c *citationCache) flush() {
	c.cache.Flush()
}

func (c *citationCache) len() int {
	return c.cache.ItemCount()
}
