// Package storage provides the persistence layer for nippou. All state lives
// in one JSON document; every operation reads the full document, mutates it
// in memory, and writes the full document back. Writes go to a temporary
// file followed by a rename so the document is never left half-written.
//
// The store performs no locking. Callers must serialize access: one process,
// one operation at a time against the same backing document.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"nippou/internal/errors"
	"nippou/internal/logging"
	"nippou/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "nippou"
	// DocumentName is the file name of the backing document.
	DocumentName = "db.json"
)

// Store is a handle on one backing document. It holds only the path;
// state is re-read on every operation.
type Store struct {
	path string
}

// DefaultPath returns the default document path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, DocumentName)
}

// New creates a store for the document at path. No I/O happens until the
// first operation.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing document path.
func (s *Store) Path() string {
	return s.path
}

// Init ensures the backing document exists, creating it with default
// contents if necessary.
func (s *Store) Init() error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(s.path); os.IsNotExist(statErr) {
		return s.write(doc)
	}
	return nil
}

// load reads and decodes the full document. A missing file yields the
// default empty document; an unreadable or undecodable file is a
// store-uninitialized condition.
func (s *Store) load() (*model.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultDocument(), nil
		}
		return nil, errors.NewSystemErrorWithOp("load",
			errors.ErrStoreUninitialized.Error(), errors.Wrap(err, "read document"))
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewSystemErrorWithOp("load",
			errors.ErrStoreUninitialized.Error(), errors.Wrap(err, "decode document"))
	}
	return &doc, nil
}

// write encodes and atomically replaces the full document.
func (s *Store) write(doc *model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.NewSystemErrorWithOp("write", "encode document", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewSystemErrorWithOp("write", "create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, DocumentName+".tmp-*")
	if err != nil {
		return errors.NewSystemErrorWithOp("write", "create temporary file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewSystemErrorWithOp("write", "write document", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewSystemErrorWithOp("write", "close temporary file", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.NewSystemErrorWithOp("write", "replace document", err)
	}

	logging.DebugLog("document written",
		logging.KeyPath, s.path,
		logging.KeyCount, len(doc.Reports))
	return nil
}

// update runs one read-modify-write cycle against the document.
func (s *Store) update(mutate func(*model.Document) error) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.write(doc)
}
