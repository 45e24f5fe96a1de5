// Package fileutil provides file system utilities for handing resolved
// configurations to the execution engine.
package fileutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/thoreinstein/pipex/internal/errors"
)

// DefaultFilePerm is the permission of files written by AtomicWriteFunc.
const DefaultFilePerm = 0o644

// AtomicWriteFile stores data at path through a synced temp file in the
// same directory and a rename, so readers see either the previous file or
// the complete new one. The parent directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pipex-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	committed = true
	return nil
}

// AtomicWriteFunc renders content with write and stores it at path
// atomically with DefaultFilePerm. Nothing is written if write fails.
// A trailing newline is appended when missing.
func AtomicWriteFunc(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}

	data := buf.Bytes()
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	return AtomicWriteFile(path, data, DefaultFilePerm)
}
