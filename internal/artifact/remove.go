package artifact

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
)

// Cleaner is the part of the workspace cleaner Remove depends on.
type Cleaner interface {
	Clean(ctx context.Context, target string) ([]string, error)
}

// Remover performs a hard reset: it drops the preprint and every
// intermediate file, plus stray copies of the fallback PDF name.
type Remover struct {
	root         string
	outputDir    string
	preprintFile string
	fallback     string
	cleaner      Cleaner
}

// NewRemover creates a Remover working in root.
func NewRemover(cfg *config.Config, root string, cleaner Cleaner) *Remover {
	return &Remover{
		root:         root,
		outputDir:    cfg.OutputDir,
		preprintFile: cfg.PreprintFile(),
		fallback:     cfg.FallbackName,
		cleaner:      cleaner,
	}
}

// Remove deletes <out>/<pdf>.pdf when present, then cleans the tree with the
// fallback name as extra target. A missing preprint is skipped silently.
func (r *Remover) Remove(ctx context.Context) error {
	preprint := r.outputDir + "/" + r.preprintFile
	err := os.Remove(resolve(r.root, preprint))
	switch {
	case err == nil:
		slog.Info("Removed preprint", logfields.Path(preprint))
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("No preprint to remove", logfields.Path(preprint))
	default:
		return ferrors.FileSystemError("failed to remove preprint").
			WithCause(err).
			WithContext("path", preprint).
			Build()
	}

	_, err = r.cleaner.Clean(ctx, r.fallback)
	return err
}
