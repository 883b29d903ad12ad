package storage

import (
	"context"
	"log/slog"

	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/models/catalog"
	"github.com/supakorn-kn/go-library/objects"
)

// Store reads and writes catalog records. Load returns an empty record when
// nothing has been stored yet.
type Store interface {
	Load(ctx context.Context) (objects.CatalogRecord, error)
	Save(ctx context.Context, record objects.CatalogRecord) error
}

type Repository struct {
	store  Store
	logger *slog.Logger
}

func NewRepository(store Store, logger *slog.Logger) *Repository {

	if logger == nil {
		logger = slog.Default()
	}

	return &Repository{store: store, logger: logger}
}

// Load never fails. Unreadable data is logged and an empty catalog is returned.
func (r *Repository) Load(ctx context.Context) *catalog.Catalog {

	record, err := r.store.Load(ctx)
	if err != nil {

		if !errors.PersistenceReadCorruptError.IsEqual(err) {
			err = errors.PersistenceReadCorruptError.New(err)
		}

		r.logger.Warn("Loading catalog failed, starting with empty catalog", "error", err)
		return catalog.New()
	}

	c := catalog.FromRecord(record)
	summary := c.Summary()
	r.logger.Info("Catalog loaded", "books", summary.TotalBooks, "members", summary.TotalMembers, "issued", summary.IssuedCount)

	return c
}

func (r *Repository) Save(ctx context.Context, c *catalog.Catalog) error {

	if err := r.store.Save(ctx, c.Record()); err != nil {

		r.logger.Error("Saving catalog failed", "error", err)
		return errors.PersistenceWriteFailedError.New(err)
	}

	return nil
}
