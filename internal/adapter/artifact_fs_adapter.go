// Package adapter contains the infrastructure boundaries of opaq: process
// execution, the filesystem, the module image codec, manifest parsing, the
// build tool and the inspection listing writer.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "opaq.dev/pkg/opaq/internal/model"
)

// ArtifactFS abstracts the filesystem operations the pipeline relies on so the
// domain layer can be tested without touching the disk.
type ArtifactFS interface {
	// Exists reports whether a regular file exists at path.
	Exists(path m.Path) (bool, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file at path. The content is written to a
	// sibling temporary file first so a failed write never leaves a partial
	// artifact behind.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// Abs returns an absolute representation of path.
	Abs(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalArtifactFS is the os-backed ArtifactFS.
type LocalArtifactFS struct{}

// NewLocalArtifactFS constructs a LocalArtifactFS.
func NewLocalArtifactFS() *LocalArtifactFS {
	return &LocalArtifactFS{}
}

// Exists reports whether a regular file exists at path.
func (a *LocalArtifactFS) Exists(path m.Path) (bool, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return !info.IsDir(), nil
}

// MkdirAll creates a directory tree.
func (a *LocalArtifactFS) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// ReadFile loads file contents from disk.
func (a *LocalArtifactFS) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the build tool and the operator
	return os.ReadFile(string(path))
}

// WriteFile writes content atomically by renaming a temporary sibling file.
func (a *LocalArtifactFS) WriteFile(path m.Path, content []byte) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalArtifactFS) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Abs returns an absolute path.
func (a *LocalArtifactFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalArtifactFS) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
