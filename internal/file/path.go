package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateDstPath ensures dstPath can be created (or overwritten) as a regular file
func ValidateDstPath(dstPath string) error {
	if info, err := os.Stat(dstPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("destination path '%s' is a directory, please specify a file path", dstPath)
		}
		// Existing files are overwritten
		return nil
	}

	// Missing parent directories are created on write, but an existing
	// ancestor that is a regular file can never become a directory
	for dir := filepath.Dir(dstPath); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
		info, err := os.Stat(dir)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			return fmt.Errorf("parent path '%s' is not a directory", dir)
		}
		break
	}

	filename := filepath.Base(dstPath)
	if filename == "." || filename == ".." || filename == string(filepath.Separator) {
		return fmt.Errorf("destination path '%s' does not specify a filename", dstPath)
	}
	return nil
}
