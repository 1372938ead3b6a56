package artifact

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
)

// Press relocates the freshly built preprint into a release or archive
// directory below the output directory.
type Press struct {
	root         string
	outputDir    string
	preprintFile string
	archiveDir   string
	clock        func() time.Time
	matcher      EntryMatcher
}

// NewPress creates a Press working in root, the working directory all
// configured paths are relative to.
func NewPress(cfg *config.Config, root string) *Press {
	return &Press{
		root:         root,
		outputDir:    cfg.OutputDir,
		preprintFile: cfg.PreprintFile(),
		archiveDir:   cfg.ArchiveDir,
		clock:        time.Now,
		matcher:      PrefixMatch,
	}
}

// WithClock replaces the time source used for archive names.
func (p *Press) WithClock(clock func() time.Time) *Press {
	if clock != nil {
		p.clock = clock
	}
	return p
}

// WithMatcher replaces the working-directory entry matcher.
func (p *Press) WithMatcher(m EntryMatcher) *Press {
	if m != nil {
		p.matcher = m
	}
	return p
}

// Target computes the destination directory and final file name for docName,
// both relative to the working directory.
func (p *Press) Target(dest Destination, docName string) (dist, filename string) {
	if dest.IsArchive() {
		docName = Stamp(docName, p.clock())
		dist = p.outputDir + "/" + p.archiveDir
	} else {
		dist = p.outputDir + "/" + dest.Dir()
	}
	return dist, docName + ".pdf"
}

// Press moves <out>/<pdf>.pdf to the destination under docName and returns
// the final path relative to the working directory. It returns an empty path
// when no working-directory entry matched the output directory.
//
// A missing preprint is a fatal not-found error: in a batch it aborts every
// remaining project.
func (p *Press) Press(_ context.Context, dest Destination, docName string) (string, error) {
	dist, filename := p.Target(dest, docName)
	preprint := p.outputDir + "/" + p.preprintFile

	if _, err := os.Stat(p.abs(preprint)); err != nil {
		return "", ferrors.NotFoundError("PDF preprint not found!").
			WithContext("path", preprint).
			Build()
	}

	matched, err := p.outputEntries()
	if err != nil {
		return "", err
	}
	if len(matched) == 0 {
		slog.Warn("No working directory entry matches the output directory, preprint left in place",
			logfields.Path(preprint))
		return "", nil
	}

	compiled := dist + "/" + filename
	moved := false
	for _, entry := range matched {
		if moved {
			slog.Debug("Preprint already pressed, skipping entry", "entry", entry)
			continue
		}
		if err := p.relocate(preprint, dist, compiled); err != nil {
			return "", err
		}
		moved = true
	}

	slog.Info("Pressed preprint",
		logfields.Destination(dest.String()),
		logfields.Path(compiled))
	return compiled, nil
}

// outputEntries returns the working-directory entries holding the build
// output. An absolute output directory lies outside the working tree and is
// its own single entry.
func (p *Press) outputEntries() ([]string, error) {
	if filepath.IsAbs(filepath.FromSlash(p.outputDir)) {
		return []string{p.outputDir}, nil
	}
	entries, err := topLevelEntries(p.root)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to list working directory").
			WithCause(err).
			WithContext("path", p.root).
			Build()
	}
	return p.matcher(entries, p.outputDir), nil
}

// relocate creates dist on demand, clears any previous artifact at compiled
// and renames the preprint into place.
func (p *Press) relocate(preprint, dist, compiled string) error {
	if err := os.MkdirAll(p.abs(dist), 0o750); err != nil {
		return ferrors.FileSystemError("failed to create destination directory").
			WithCause(err).
			WithContext("path", dist).
			Build()
	}

	if _, err := os.Stat(p.abs(compiled)); err == nil {
		if err := os.Remove(p.abs(compiled)); err != nil {
			return ferrors.FileSystemError("failed to replace existing artifact").
				WithCause(err).
				WithContext("path", compiled).
				Build()
		}
		slog.Debug("Replaced existing artifact", logfields.Path(compiled))
	}

	if err := os.Rename(p.abs(preprint), p.abs(compiled)); err != nil {
		return ferrors.FileSystemError("failed to move preprint").
			WithCause(err).
			WithContext("from", preprint).
			WithContext("to", compiled).
			Build()
	}
	return nil
}

func (p *Press) abs(path string) string {
	return resolve(p.root, path)
}
