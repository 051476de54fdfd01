package keystore

import (
	"os"
	"path/filepath"

	"go.trai.ch/courier/internal/core/domain"
)

// atomicWriteFile writes data to path through a synced temp file in the same directory and a rename.
// Readers see either the previous content or the new content, never a partial write.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".keystore-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return syncDir(dir)
}

// syncDir flushes the directory entry created by a rename.
func syncDir(dir string) error {
	d, err := os.Open(dir) //nolint:gosec // dir is derived from the configured store path
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	// Some filesystems reject fsync on directories; the rename itself already happened.
	_ = d.Sync()
	return nil
}
