package filesystem

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bnema/favbuddy/internal/application/port"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Adapter implements port.FileSystem on top of an afero filesystem.
type Adapter struct {
	fs afero.Fs
}

// New creates a filesystem adapter backed by the OS filesystem.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates an adapter over fs.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *Adapter) ReadFile(_ context.Context, path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

func (a *Adapter) WriteFile(_ context.Context, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := a.fs.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return afero.WriteFile(a.fs, path, data, filePerm)
}

var _ port.FileSystem = (*Adapter)(nil)
