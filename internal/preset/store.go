package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bretbouchard/tentaclegen/internal/logger"
)

// Store loads preset documents from a directory and caches the resolved
// result per name. The cache has an explicit lifecycle: Load fills it,
// Invalidate empties it. It is injected into callers; there is no ambient
// global cache.
type Store struct {
	dir   string
	cache map[string]*Resolved
}

// NewStore creates a store over a preset directory.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: make(map[string]*Resolved),
	}
}

// Load returns the named preset, reading and resolving <dir>/<name>.yaml
// on first use and serving the cache afterwards.
func (s *Store) Load(name string) (*Resolved, error) {
	if resolved, ok := s.cache[name]; ok {
		return resolved, nil
	}

	path := filepath.Join(s.dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %q: %w", name, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing preset %q: %w", name, err)
	}

	resolved, err := doc.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving preset %q: %w", name, err)
	}

	logger.Debug("preset loaded",
		zap.String("name", name),
		zap.String("path", path),
	)
	s.cache[name] = resolved
	return resolved, nil
}

// Invalidate drops the named preset from the cache so the next Load
// re-reads it. Unknown names are a no-op.
func (s *Store) Invalidate(name string) {
	delete(s.cache, name)
}

// InvalidateAll empties the cache.
func (s *Store) InvalidateAll() {
	s.cache = make(map[string]*Resolved)
}

// Cached returns the sorted names currently in the cache.
func (s *Store) Cached() []string {
	names := make([]string, 0, len(s.cache))
	for name := range s.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Available lists the preset names present in the directory, loaded or not.
func (s *Store) Available() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name()[:len(e.Name())-len(ext)])
		}
	}
	sort.Strings(names)
	return names, nil
}
