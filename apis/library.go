package apis

import (
	"context"
	"sync"

	"github.com/supakorn-kn/go-library/models/catalog"
)

type Saver interface {
	Save(ctx context.Context, c *catalog.Catalog) error
}

// Library serializes access to a catalog shared by concurrent requests
type Library struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	saver   Saver
}

func NewLibrary(c *catalog.Catalog, saver Saver) *Library {
	return &Library{catalog: c, saver: saver}
}

// Read runs fn while holding the catalog. Values handed out of fn must be copies.
func (l *Library) Read(fn func(c *catalog.Catalog) error) error {

	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(l.catalog)
}

// Write runs fn while holding the catalog and saves the catalog when fn succeeds.
// A failed save keeps the change in memory.
func (l *Library) Write(ctx context.Context, fn func(c *catalog.Catalog) error) error {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := fn(l.catalog); err != nil {
		return err
	}

	if l.saver == nil {
		return nil
	}

	return l.saver.Save(ctx, l.catalog)
}
