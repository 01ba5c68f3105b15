//go:generate go run go.uber.org/mock/mockgen -source=export.go -destination=../mocks/mock_export_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"team-lab/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const exportPrefix = "export:"

type IExportRepository interface {
	Store(content []byte) (uuid.UUID, error)
	Take(id uuid.UUID) ([]byte, error)
}

// ExportRepository keeps finished workbooks until they are downloaded once or their TTL runs out.
type ExportRepository struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

func NewExportRepository(db *badger.DB, log *slog.Logger, ttl time.Duration) ExportRepository {
	return ExportRepository{db: db, log: log, ttl: ttl}
}

// OpenInMemory opens a badger instance that never touches the disk.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
}

func exportKey(id uuid.UUID) []byte {
	return []byte(exportPrefix + id.String())
}

func (e ExportRepository) Store(content []byte) (uuid.UUID, error) {
	id := uuid.New()
	err := e.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(exportKey(id), content).WithTTL(e.ttl))
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store export: %w", err)
	}
	e.log.Debug("export stored", "id", id, "bytes", len(content), "ttl", e.ttl)
	return id, nil
}

// Take returns the export and deletes it in the same transaction, so a second call
// for the same id reports ErrExportNotFound.
func (e ExportRepository) Take(id uuid.UUID) ([]byte, error) {
	var content []byte
	err := e.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(exportKey(id))
		if err != nil {
			return err
		}
		if content, err = item.ValueCopy(nil); err != nil {
			return err
		}
		return txn.Delete(exportKey(id))
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrExportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("take export %s: %w", id, err)
	}
	e.log.Debug("export taken", "id", id, "bytes", len(content))
	return content, nil
}
