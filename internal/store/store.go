// Package store reads and writes the pier config file. It turns bytes into a
// Document holding the script registry and back, and maps every failure onto
// the CONFIG_READ, TOML_PARSE and CONFIG_WRITE error codes.
package store

import (
	mdwerror "github.com/msto63/pier/foundation/core/error"
	"github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/foundation/utils/filex"
	mdwstringx "github.com/msto63/pier/foundation/utils/stringx"
	"github.com/msto63/pier/internal/registry"
)

// Document is the content of a config file
type Document struct {
	// DefaultShell is the shell scripts are run with, empty for the
	// environment default
	DefaultShell string
	Scripts      *registry.Registry
}

// NewDocument returns a document with an empty registry
func NewDocument() *Document {
	return &Document{Scripts: registry.New(registry.Options{})}
}

// Options configures a Store
type Options struct {
	Format Format
	Logger *log.Logger
}

// Store reads and writes a single config file
type Store struct {
	path   string
	format Format
	logger *log.Logger
}

// New creates a store for path. FormatAuto picks the format from the
// file extension.
func New(path string, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return &Store{
		path:   path,
		format: opts.Format.resolve(path),
		logger: logger.WithField("component", "store"),
	}
}

// Path returns the configured file path
func (s *Store) Path() string {
	return s.path
}

// Format returns the resolved file format
func (s *Store) Format() Format {
	return s.format
}

// Load reads and parses the config file. Read failures are reported as
// CONFIG_READ before any parsing happens; malformed content is TOML_PARSE.
func (s *Store) Load() (*Document, error) {
	const op = "store.Load"

	if mdwstringx.IsBlank(s.path) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeConfigRead).
			WithOperation(op)
	}

	data, err := filex.ReadFile(s.path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot read config file").
			WithCode(mdwerror.CodeConfigRead).
			WithOperation(op).
			WithDetail("path", s.path)
	}

	doc, err := decode(data, s.format, s.logger)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot parse config file").
			WithOperation(op).
			WithDetail("path", s.path).
			WithDetail("format", s.format.String())
	}

	s.logger.Debug("config loaded", log.Fields{
		"path":    s.path,
		"format":  s.format.String(),
		"scripts": doc.Scripts.Len(),
	})

	return doc, nil
}

// Save serializes doc and overwrites the config file with it in one write.
// Every failure is reported as CONFIG_WRITE.
func (s *Store) Save(doc *Document) error {
	const op = "store.Save"

	if mdwstringx.IsBlank(s.path) {
		return mdwerror.New("no config file path to write to").
			WithCode(mdwerror.CodeConfigWrite).
			WithOperation(op)
	}

	data, err := encode(doc, s.format)
	if err != nil {
		return mdwerror.Wrap(err, "cannot serialize config").
			WithCode(mdwerror.CodeConfigWrite).
			WithOperation(op).
			WithDetail("path", s.path).
			WithDetail("format", s.format.String())
	}

	if err := filex.WriteFile(s.path, data, filex.DefaultFilePerm); err != nil {
		return mdwerror.Wrap(err, "cannot write config file").
			WithCode(mdwerror.CodeConfigWrite).
			WithOperation(op).
			WithDetail("path", s.path)
	}

	s.logger.Debug("config written", log.Fields{
		"path":  s.path,
		"bytes": len(data),
	})

	return nil
}

// Load reads the config file at path
func Load(path string, opts Options) (*Document, error) {
	return New(path, opts).Load()
}

// Save writes doc to the config file at path
func Save(doc *Document, path string, opts Options) error {
	return New(path, opts).Save(doc)
}
