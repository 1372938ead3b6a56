// Package cleaner removes the intermediate files the typesetting toolchain
// scatters across the working tree.
package cleaner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
)

// extensions is the fixed set of intermediate file extensions.
var extensions = []string{
	"aux",
	"fdb_latexmk",
	"fls",
	"lof",
	"log",
	"lol",
	"lot",
	"nav",
	"out",
	"snm",
	"gz",
	"toc",
	"xdv",
}

// Extensions returns a copy of the recognized intermediate extensions.
func Extensions() []string {
	return slices.Clone(extensions)
}

// Extension returns the text after the final "." in name. A name without a
// dot has no extension.
func Extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// IsIntermediate reports whether name carries a recognized extension.
func IsIntermediate(name string) bool {
	return slices.Contains(extensions, Extension(name))
}

// Cleaner walks a root directory and deletes intermediate files.
type Cleaner struct {
	root string
}

// New creates a Cleaner rooted at the working directory root.
func New(root string) *Cleaner {
	return &Cleaner{root: root}
}

// Collect walks the tree and returns every file that Clean would delete.
// A non-empty target additionally matches files with exactly that name.
func (c *Cleaner) Collect(target string) ([]string, error) {
	var trash []string
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if IsIntermediate(name) || (target != "" && name == target) {
			trash = append(trash, path)
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.FileSystemError("failed to scan working tree").
			WithCause(err).
			WithContext("path", c.root).
			Build()
	}
	return trash, nil
}

// Clean deletes the collected files once the walk has finished, so the tree
// is never modified while it is being traversed. It returns the removed
// paths; finding nothing is not an error, failing to delete is.
func (c *Cleaner) Clean(_ context.Context, target string) ([]string, error) {
	trash, err := c.Collect(target)
	if err != nil {
		return nil, err
	}

	for _, path := range trash {
		if err := os.Remove(path); err != nil {
			return nil, ferrors.FileSystemError("failed to delete intermediate file").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
		slog.Debug("Removed intermediate file", logfields.Path(path))
	}

	slog.Info("Cleaned working tree", logfields.Path(c.root), logfields.Count(len(trash)))
	return trash, nil
}
