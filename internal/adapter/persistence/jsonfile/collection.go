// Package jsonfile stores quotes, projects and payments as pretty-printed JSON
// arrays on local disk (data/quotes.json, data/projects.json...). It targets
// single-instance deployments and local development.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var ErrDuplicateID = errors.New("item already exists")

// collection is one JSON file holding an array of T. Every operation reads the
// file and writes it back whole under the collection lock.
type collection[T any] struct {
	mu   sync.Mutex
	path string
	id   func(T) string
}

func newCollection[T any](dir, name string, id func(T) string) (*collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	c := &collection[T]{path: filepath.Join(dir, name), id: id}
	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		if err := c.write(nil); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *collection[T]) read() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var items []T
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}
	return items, nil
}

// write replaces the file atomically.
func (c *collection[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

func (c *collection[T]) all() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// find returns the first item matching fn, or the zero T.
func (c *collection[T]) find(fn func(T) bool) (T, error) {
	var zero T
	items, err := c.all()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if fn(it) {
			return it, nil
		}
	}
	return zero, nil
}

func (c *collection[T]) filter(fn func(T) bool) ([]T, error) {
	items, err := c.all()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for _, it := range items {
		if fn(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *collection[T]) insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.read()
	if err != nil {
		return err
	}
	for _, it := range items {
		if c.id(it) == c.id(item) {
			return ErrDuplicateID
		}
	}
	return c.write(append(items, item))
}

// upsert replaces the item with the same id or appends it.
func (c *collection[T]) upsert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.read()
	if err != nil {
		return err
	}
	for i, it := range items {
		if c.id(it) == c.id(item) {
			items[i] = item
			return c.write(items)
		}
	}
	return c.write(append(items, item))
}

// update applies fn to the item with the given id. ok is false when no item
// matches.
func (c *collection[T]) update(id string, fn func(*T)) (item T, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.read()
	if err != nil {
		return item, false, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			fn(&items[i])
			return items[i], true, c.write(items)
		}
	}
	return item, false, nil
}
