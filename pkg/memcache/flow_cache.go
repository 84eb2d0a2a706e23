package mem

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// FlowCacheStore keeps flow results keyed by flow name and input.
type FlowCacheStore interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Enabled() bool
	ItemCount() int
}

type FlowCache struct {
	items *gocache.Cache
}

func NewFlowCache(ttl, cleanupInterval time.Duration) *FlowCache {
	return &FlowCache{items: gocache.New(ttl, cleanupInterval)}
}

func (c *FlowCache) Get(key string) (any, bool) { return c.items.Get(key) }

func (c *FlowCache) Set(key string, value any) { c.items.SetDefault(key, value) }

func (c *FlowCache) Enabled() bool { return true }

func (c *FlowCache) ItemCount() int { return c.items.ItemCount() }

// Disabled never stores anything.
type Disabled struct{}

func (Disabled) Get(string) (any, bool) { return nil, false }
func (Disabled) Set(string, any)        {}
func (Disabled) Enabled() bool          { return false }
func (Disabled) ItemCount() int         { return 0 }

// Key is the flow name plus the SHA-256 of the JSON-encoded input.
func Key(flow string, input any) (string, error) {
	b, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return flow + ":" + hex.EncodeToString(sum[:]), nil
}

// Remember returns the cached result for (flow, input) or computes and stores
// it. Errors are never cached.
func Remember[T any](store FlowCacheStore, flow string, input any, compute func() (*T, error)) (*T, error) {
	if store == nil || !store.Enabled() {
		return compute()
	}

	key, err := Key(flow, input)
	if err != nil {
		return compute()
	}
	if v, ok := store.Get(key); ok {
		if cached, ok := v.(*T); ok {
			return cached, nil
		}
	}

	out, err := compute()
	if err != nil {
		return nil, err
	}
	store.Set(key, out)
	return out, nil
}
