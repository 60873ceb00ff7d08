package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// WriteTo writes every registered file below dir on fsys and returns the
// written paths. Each file is written to a temporary sibling and renamed into
// place, so a failed write never leaves a truncated resource behind.
func (t *Tree) WriteTo(fsys afero.Fs, dir string) ([]string, error) {
	if fsys == nil {
		return nil, fmt.Errorf("write resources: nil filesystem")
	}
	var written []string
	for _, p := range t.order {
		pkgDir := filepath.Join(dir, filepath.FromSlash(p.Dir()))
		for _, f := range p.files {
			dest := filepath.Join(pkgDir, f.Name)
			if err := writeAtomic(fsys, dest, f.Data); err != nil {
				return written, fmt.Errorf("write resource %s: %w", dest, err)
			}
			written = append(written, dest)
		}
	}
	return written, nil
}

func writeAtomic(fsys afero.Fs, dest string, data []byte) (err error) {
	dir := filepath.Dir(dest)
	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	tmp, err := afero.TempFile(fsys, dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			err = errors.Join(err, removeIfExists(fsys, tmpPath))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := fsys.Chmod(tmpPath, filePerm); err != nil {
		return err
	}
	return fsys.Rename(tmpPath, dest)
}

func removeIfExists(fsys afero.Fs, path string) error {
	if err := fsys.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
