// Package pier binds a script registry to its config file. It is the entry
// point used by the CLI: open a file, mutate the registry, write it back.
package pier

import (
	"github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/internal/registry"
	"github.com/msto63/pier/internal/store"
)

// Pier is a registry loaded from, and written back to, one config file
type Pier struct {
	store  *store.Store
	doc    *store.Document
	logger *log.Logger
}

// New returns a Pier with an empty registry and no backing file.
// Write on it fails with CONFIG_WRITE.
func New() *Pier {
	return &Pier{
		store:  store.New("", store.Options{}),
		doc:    store.NewDocument(),
		logger: log.Discard(),
	}
}

// Open loads the config file at path
func Open(path string, opts store.Options) (*Pier, error) {
	s := store.New(path, opts)

	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return &Pier{
		store:  s,
		doc:    doc,
		logger: logger.WithField("component", "pier"),
	}, nil
}

// Path returns the backing file path, empty for New
func (p *Pier) Path() string {
	return p.store.Path()
}

// DefaultShell returns the shell configured in the file
func (p *Pier) DefaultShell() string {
	return p.doc.DefaultShell
}

// SetDefaultShell changes the configured shell
func (p *Pier) SetDefaultShell(shell string) {
	p.doc.DefaultShell = shell
}

// Registry exposes the underlying registry
func (p *Pier) Registry() *registry.Registry {
	return p.doc.Scripts
}

// AddScript adds a script, replacing an existing one only with overwrite
func (p *Pier) AddScript(script registry.Script, overwrite bool) error {
	return p.doc.Scripts.Add(script, overwrite)
}

// RemoveScript removes the script with alias
func (p *Pier) RemoveScript(alias string) error {
	return p.doc.Scripts.Remove(alias)
}

// FetchScript returns a copy of the script with alias
func (p *Pier) FetchScript(alias string) (registry.Script, error) {
	return p.doc.Scripts.Fetch(alias)
}

// MoveScript renames a script
func (p *Pier) MoveScript(from, to string, overwrite bool) error {
	return p.doc.Scripts.Move(from, to, overwrite)
}

// ListScripts returns the scripts matching opts in registry order
func (p *Pier) ListScripts(opts registry.ListOptions) ([]registry.Script, error) {
	return p.doc.Scripts.List(opts)
}

// Write saves the registry to the backing file
func (p *Pier) Write() error {
	if err := p.store.Save(p.doc); err != nil {
		return err
	}
	p.logger.Debug("registry written", log.Fields{"path": p.Path(), "scripts": p.doc.Scripts.Len()})
	return nil
}
