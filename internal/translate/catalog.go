package translate

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/kavyabhat/scanlate/internal/config"
)

// Lister fetches the live model listing for a credential.
type Lister interface {
	ListModels(ctx context.Context, credential string) ([]ModelInfo, error)
}

// fallbackModels is served whenever a live listing is impossible.
func fallbackModels() []ModelInfo {
	return []ModelInfo{
		{Name: "gemini-1.5-flash", Description: "Fast & cheap | 1M context"},
		{Name: "gemini-1.5-pro", Description: "Advanced | 2M context"},
		{Name: "gemini-2.0-flash-exp", Description: "Experimental fast model"},
	}
}

type catalogEntry struct {
	models   []ModelInfo
	cachedAt time.Time
}

// ModelCatalog caches per-chat model listings. A performance
// optimization over the remote call, not a correctness concern.
type ModelCatalog struct {
	mu     sync.Mutex
	lister Lister
	ttl    time.Duration
	now    func() time.Time
	cache  map[int64]catalogEntry
}

func NewModelCatalog(lister Lister) *ModelCatalog {
	return &ModelCatalog{
		lister: lister,
		ttl:    config.ModelCacheTTL,
		now:    time.Now,
		cache:  make(map[int64]catalogEntry),
	}
}

// NewGeminiCatalog wires the catalog to the live Gemini listing.
func NewGeminiCatalog() *ModelCatalog {
	return NewModelCatalog(newGeminiBackend())
}

// Fetch returns the chat's model listing, sorted by name ascending.
// Missing credential or any listing failure yields the fallback set.
// Results stay cached for the freshness window either way.
func (c *ModelCatalog) Fetch(ctx context.Context, chatID int64, credential string) []ModelInfo {
	c.mu.Lock()
	if entry, ok := c.cache[chatID]; ok && c.now().Sub(entry.cachedAt) < c.ttl {
		c.mu.Unlock()
		return entry.models
	}
	c.mu.Unlock()

	models := c.fetchLive(ctx, credential)
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })

	c.mu.Lock()
	c.cache[chatID] = catalogEntry{models: models, cachedAt: c.now()}
	c.mu.Unlock()
	return models
}

func (c *ModelCatalog) fetchLive(ctx context.Context, credential string) []ModelInfo {
	if credential == "" {
		return fallbackModels()
	}

	ctx, cancel := context.WithTimeout(ctx, config.ModelListTimeout)
	defer cancel()

	models, err := c.lister.ListModels(ctx, credential)
	if err != nil || len(models) == 0 {
		if err != nil {
			slog.Warn("live model listing failed, serving fallback", "error", err)
		}
		return fallbackModels()
	}
	return models
}
