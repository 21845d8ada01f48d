package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindFile returns the config file to load. An explicit path must exist.
// Otherwise FileName is searched from startDir upwards, stopping at the
// home directory, a directory containing .git, or the filesystem root.
// Nothing found is not an error and yields "".
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", nil
}
