package binfastq

import (
	"os"
	"path/filepath"
)

// atomicFile writes to a temp file that replaces path on Commit.
type atomicFile struct {
	f    *os.File
	path string
}

func createAtomic(path string) (*atomicFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &atomicFile{f: f, path: path}, nil
}

func (a *atomicFile) Write(p []byte) (int, error) {
	return a.f.Write(p)
}

// Commit closes the temp file and renames it over the target.
func (a *atomicFile) Commit() error {
	if err := a.f.Chmod(0o644); err != nil {
		_ = a.Abort()
		return err
	}
	if err := a.f.Close(); err != nil {
		_ = os.Remove(a.f.Name())
		return err
	}
	return os.Rename(a.f.Name(), a.path)
}

// Abort discards the temp file, leaving any existing target untouched.
func (a *atomicFile) Abort() error {
	_ = a.f.Close()
	return os.Remove(a.f.Name())
}
