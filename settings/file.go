package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath returns the settings file location inside the user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: %w", err)
	}
	return filepath.Join(dir, "ThickLine", "settings.ini"), nil
}

// Load reads the settings file at path. A missing file is not an error
// and yields Default.
func Load(path string) (Settings, error) {
	fp, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return Default(), fmt.Errorf("settings: %w", err)
	}
	defer fp.Close()
	return Read(fp)
}

// Save writes s to path, creating the parent directory if needed.
// The previous file contents are replaced.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := Write(fp, s); err != nil {
		fp.Close()
		return fmt.Errorf("settings: writing %s: %w", path, err)
	}
	return fp.Close()
}
