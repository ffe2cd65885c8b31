// Package puzzles embeds a small library of named example boards.
package puzzles

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"svw.info/sudoku-engine/internal/domain"
)

//go:embed puzzles.yaml
var libraryYAML []byte

// Entry is one named example puzzle.
type Entry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

type library struct {
	Puzzles []Entry `yaml:"puzzles"`
}

var (
	loadOnce sync.Once
	entries  map[string]Entry
	loadErr  error
)

func load() error {
	loadOnce.Do(func() {
		var lib library
		if err := yaml.Unmarshal(libraryYAML, &lib); err != nil {
			loadErr = fmt.Errorf("parse embedded puzzle library: %w", err)
			return
		}
		entries = make(map[string]Entry, len(lib.Puzzles))
		for _, e := range lib.Puzzles {
			entries[e.Name] = e
		}
	})
	return loadErr
}

// Names lists the library entries in sorted order.
func Names() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Get returns the raw entry for name.
func Get(name string) (Entry, error) {
	if err := load(); err != nil {
		return Entry{}, err
	}
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown puzzle %q", name)
	}
	return e, nil
}

// ByName parses the named entry into a board.
func ByName(name string) (*domain.Board, error) {
	e, err := Get(name)
	if err != nil {
		return nil, err
	}
	return domain.ParseRows(e.Rows)
}
