package workers

import (
	"context"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// StorageGCWorker reclaims Badger value-log space. Badger only garbage
// collects when asked, so without this worker deleted messages keep
// their disk space forever.
type StorageGCWorker struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
}

func NewStorageGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration) *StorageGCWorker {
	return &StorageGCWorker{log: log, db: db, interval: interval}
}

func (w *StorageGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// RunValueLogGC returns ErrNoRewrite when there was
			// nothing worth compacting; that is the common case.
			for {
				if err := w.db.RunValueLogGC(0.5); err != nil {
					break
				}
				w.log.Debug("value log file rewritten")
			}
		}
	}
}
