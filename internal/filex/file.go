// Package filex provides small file-system helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ReplaceFile writes data as the complete new content of path. The bytes are
// first written to a uniquely named temporary file in the same directory and
// then renamed into place, so a reader never observes a partially written
// document.
func ReplaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		// Rename failed; the temp file is useless now.
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}

	return nil
}
