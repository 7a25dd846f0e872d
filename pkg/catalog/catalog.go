// Package catalog reads a browsable collection of component files.
//
// A catalog is a directory with a types.toml index. The index lists
// component groups, each pointing at a list file of the same shape whose
// entries point at component files:
//
//	# types.toml
//	[[list]]
//	path = "lists/timers.toml"
//	display = "Timers"
//
//	# lists/timers.toml
//	[[list]]
//	path = "ics/ne555.toml"
//	display = "NE555 precision timer"
//
// Every path is relative to the catalog root and may not leave it.
package catalog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/errors"
)

// IndexFile is the name of the top-level index inside a catalog directory.
const IndexFile = "types.toml"

// Entry is one selectable item of an index.
type Entry struct {
	Path    string `toml:"path"`
	Display string `toml:"display"`
}

// Title returns the display name, or the path when none is set.
func (e Entry) Title() string {
	if e.Display != "" {
		return e.Display
	}
	return e.Path
}

type index struct {
	List []Entry `toml:"list"`
}

// Catalog is an opened catalog directory.
type Catalog struct {
	Root  string  // directory all paths resolve against
	Types []Entry // component groups from the index
}

// Open reads the catalog at path, which is either a catalog directory or
// its index file.
func Open(path string) (*Catalog, error) {
	root, file := path, filepath.Join(path, IndexFile)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		root, file = filepath.Dir(path), path
	}

	types, err := readIndex(file)
	if err != nil {
		return nil, err
	}
	return &Catalog{Root: root, Types: types}, nil
}

// Components returns the entries of the list file of group.
func (c *Catalog) Components(group Entry) ([]Entry, error) {
	p, err := c.Resolve(group.Path)
	if err != nil {
		return nil, err
	}
	return readIndex(p)
}

// Load reads and validates the component file of e.
func (c *Catalog) Load(e Entry) (component.Descriptor, error) {
	p, err := c.Resolve(e.Path)
	if err != nil {
		return component.Descriptor{}, err
	}
	return component.Load(p)
}

// Resolve maps a catalog-relative path to a file system path.
func (c *Catalog) Resolve(rel string) (string, error) {
	if err := errors.ValidatePath(rel); err != nil {
		return "", err
	}
	return filepath.Join(c.Root, filepath.FromSlash(rel)), nil
}

func readIndex(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog index %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ReadIndex(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "catalog index %s", path)
	}
	return entries, nil
}

// ReadIndex decodes the [[list]] entries of an index or list file.
// Entries without a path are an error.
func ReadIndex(r io.Reader) ([]Entry, error) {
	var idx index
	if _, err := toml.NewDecoder(r).Decode(&idx); err != nil {
		return nil, err
	}
	for i, e := range idx.List {
		if e.Path == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "list entry %d has no path", i+1)
		}
	}
	return idx.List, nil
}
