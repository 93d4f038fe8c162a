// Package jsonstore persists each record collection as one JSON array
// document under a data directory, replaced wholesale on every save.
// Mutations of a collection are serialized through a per-collection lock so
// two concurrent read-modify-write cycles cannot both observe stale state.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/metrics"
)

// Collection names, matching the document files the consoles already use.
const (
	CollectionRequests            = "rideRequests"
	CollectionDrivers             = "drivers"
	CollectionActiveTrips         = "activeTrips"
	CollectionNotifications       = "notifications"
	CollectionDriverNotifications = "driverNotifications"
	CollectionDriverStats         = "driverStats"
)

type Store struct {
	dir string
	log logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: create data dir: %w", err)
	}
	return &Store{
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// lockFor returns the single-writer lock of a collection.
func (s *Store) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// readDoc returns the raw document. An absent or unreadable file counts as
// an absent document, callers start from empty state.
func (s *Store) readDoc(collection string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			ctx := wrap.WithAction(context.Background(), "read_collection")
			s.log.Warn(ctx, "failed to read collection, treating as absent",
				"collection", collection, "err", err.Error())
		}
		return nil, false
	}
	return data, true
}

// writeDoc atomically replaces the document: write to a temp file in the
// same directory, then rename over the target.
func (s *Store) writeDoc(collection string, data []byte) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreWrite(collection, err, time.Since(start))
	}()

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("jsonstore: create temp for %s: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: write %s: %w", collection, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: close temp for %s: %w", collection, err)
	}
	if err = os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: replace %s: %w", collection, err)
	}
	return nil
}

// load unmarshals a collection. Parse failures degrade to an empty slice,
// matching the contract that reads never fail the caller.
func load[T any](s *Store, collection string) []T {
	data, ok := s.readDoc(collection)
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		ctx := wrap.WithAction(context.Background(), "load_collection")
		s.log.Warn(ctx, "failed to parse collection, treating as empty",
			"collection", collection, "err", err.Error())
		return nil
	}
	return items
}

// save marshals and atomically replaces a collection.
func save[T any](s *Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: marshal %s: %w", collection, err)
	}
	return s.writeDoc(collection, data)
}

// update runs a read-modify-write cycle under the collection lock.
func update[T any](s *Store, collection string, fn func(items []T) ([]T, error)) error {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	items, err := fn(load[T](s, collection))
	if err != nil {
		return err
	}
	return save(s, collection, items)
}
