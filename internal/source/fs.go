package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// FSSource reads guide content from an fs.FS, typically the embedded docs
// tree.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source backed by fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Read(_ context.Context, ref string) (string, error) {
	data, err := fs.ReadFile(s.fsys, ref)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", ref, err)
	}
	return string(data), nil
}

// DirSource reads guide content from a directory on disk. Every call hits
// the filesystem, so edits are visible on the next read.
type DirSource struct {
	dir string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Read(ctx context.Context, ref string) (string, error) {
	return (&FSSource{fsys: os.DirFS(s.dir)}).Read(ctx, ref)
}
