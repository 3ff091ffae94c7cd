package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/kk-code-lab/filez/internal/logging"
)

// Host lists and creates filesystem entries. Panels only talk to the
// filesystem through a Host.
type Host interface {
	// ReadDir lists dir. The first entry is ".." unless dir is a root.
	ReadDir(ctx context.Context, dir string) ([]Entry, error)
	Exists(ctx context.Context, path string) (bool, error)
	CreateDir(ctx context.Context, path string) error
	CreateFile(ctx context.Context, path string) error
}

// LocalHost is the Host backed by the local disk.
type LocalHost struct {
	log *logging.Logger
}

// NewLocalHost returns a Host for the local filesystem. Entries that cannot
// be stat'ed are reported to log and left out of listings.
func NewLocalHost(log *logging.Logger) *LocalHost {
	return &LocalHost{log: log.With("fs")}
}

// Canonical returns the absolute, symlink-free form of dir.
func Canonical(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	return resolved, nil
}

func (h *LocalHost) ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	resolved, err := Canonical(dir)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", resolved, err)
	}

	entries := make([]Entry, 0, len(dirEntries)+1)
	if parent := filepath.Dir(resolved); parent != resolved {
		entries = append(entries, DotDot(parent))
	}

	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := de.Name()
		fullPath := filepath.Join(resolved, name)
		if ShouldHideFromListing(fullPath, name) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			h.log.Warn("skipping entry", "path", fullPath, "error", err)
			continue
		}

		entry := NewEntry(resolved, name, info)
		if entry.Kind == KindSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				entry.IsDir = target.IsDir()
			} else {
				h.log.Debug("dangling symlink", "path", fullPath)
			}
		}
		entries = append(entries, entry)
	}

	h.log.Trace("listed directory", "path", resolved, "entries", len(entries))
	return entries, nil
}

func (h *LocalHost) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

func (h *LocalHost) CreateDir(_ context.Context, path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	h.log.Info("created directory", "path", path)
	return nil
}

func (h *LocalHost) CreateFile(_ context.Context, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	h.log.Info("created file", "path", path)
	return nil
}
