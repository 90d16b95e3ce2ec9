package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/katalvlaran/gridpath/layout"
)

const (
	storeObject   = "layouts"
	storeProperty = "current"
)

// ErrNothingSaved is returned by Load when no layout has been saved yet.
var ErrNothingSaved = errors.New("editor: no saved layout")

// Store persists the working grid as a YAML layout.
//
// Backed by a gdata manager; a nil manager keeps the layout in memory only,
// so the editor still works where no data directory is available.
type Store struct {
	manager *gdata.Manager
	name    string
	mem     []byte
}

// NewStore creates a store saving under the given layout name.
//
// Parameters:
//   - manager: gdata storage manager, may be nil (memory only)
//   - name: layout name written into saved documents
func NewStore(manager *gdata.Manager, name string) *Store {
	return &Store{manager: manager, name: name}
}

// OpenStore opens a gdata manager for appName and wraps it in a Store.
// When gdata cannot be opened the error is logged and a memory-only store
// is returned.
func OpenStore(appName, name string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Store] gdata unavailable, keeping layouts in memory: %v", err)
		return NewStore(nil, name)
	}
	return NewStore(m, name)
}

// Persistent reports whether saved layouts survive the process.
func (s *Store) Persistent() bool { return s.manager != nil }

// SaveLayout stores l.
func (s *Store) SaveLayout(l *layout.Layout) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	if s.manager == nil {
		s.mem = data
		return nil
	}
	if err := s.manager.SaveObjectProp(storeObject, storeProperty, data); err != nil {
		return fmt.Errorf("editor: save layout: %w", err)
	}
	return nil
}

// LoadLayout returns the stored layout, or ErrNothingSaved.
func (s *Store) LoadLayout() (*layout.Layout, error) {
	var data []byte
	if s.manager == nil {
		if s.mem == nil {
			return nil, ErrNothingSaved
		}
		data = s.mem
	} else {
		if !s.manager.ObjectPropExists(storeObject, storeProperty) {
			return nil, ErrNothingSaved
		}
		var err error
		data, err = s.manager.LoadObjectProp(storeObject, storeProperty)
		if err != nil {
			return nil, fmt.Errorf("editor: load layout: %w", err)
		}
	}
	return layout.Parse(data)
}

// Save writes the editor's grid (without path cells) and diagonal flag to s.
func (e *Editor) Save(s *Store) error {
	if err := s.SaveLayout(layout.FromGrid(s.name, e.grid, e.diagonal)); err != nil {
		return err
	}
	log.Printf("[Editor] saved %dx%d layout %q", e.grid.Width, e.grid.Height, s.name)
	return nil
}

// Load replaces the editor's grid with the layout stored in s and recomputes
// the path. The stored grid must match the current dimensions.
func (e *Editor) Load(s *Store) error {
	l, err := s.LoadLayout()
	if err != nil {
		return err
	}
	g, err := l.Grid()
	if err != nil {
		return err
	}
	if g.Width != e.grid.Width || g.Height != e.grid.Height {
		return fmt.Errorf("%w: have %dx%d, stored %dx%d",
			ErrSizeMismatch, e.grid.Width, e.grid.Height, g.Width, g.Height)
	}
	e.grid = g
	e.diagonal = l.Diagonal
	e.stroking = false
	e.recompute()
	log.Printf("[Editor] loaded layout %q", l.Name)
	return nil
}
