package resource

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedSource wraps another Source and memoizes fully read resources so
// that files opened repeatedly (the loader reads a few names more than once
// and consumers re-open assets when panels are rebuilt) hit the disk only
// once. Entries do not expire; the underlying files are fixed game data.
type CachedSource struct {
	src   Source
	cache *gocache.Cache
}

func NewCachedSource(src Source) *CachedSource {
	return &CachedSource{
		src:   src,
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (c *CachedSource) Open(name string) (io.ReadCloser, error) {
	if data, found := c.cache.Get(name); found {
		return ioutil.NopCloser(bytes.NewReader(data.([]byte))), nil
	}

	data, err := ReadAll(c.src, name)
	if err != nil {
		return nil, err
	}
	c.cache.Set(name, data, gocache.NoExpiration)
	return ioutil.NopCloser(bytes.NewReader(data)), nil
}

func (c *CachedSource) OpenCaseInsensitive(name string) (io.ReadCloser, error) {
	// Folded key so that differently cased lookups share one entry.
	key := "fold:" + strings.ToUpper(name)
	if data, found := c.cache.Get(key); found {
		return ioutil.NopCloser(bytes.NewReader(data.([]byte))), nil
	}

	data, err := ReadAllCaseInsensitive(c.src, name)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, data, gocache.NoExpiration)
	return ioutil.NopCloser(bytes.NewReader(data)), nil
}
