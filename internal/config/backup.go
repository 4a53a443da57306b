package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// MaxBackups is how many timestamped config backups are kept
	MaxBackups = 3

	// BackupSuffix marks a backup of the user config file
	BackupSuffix = ".bak"
)

// backupStamp formats the moment a backup was taken. Lexical order of
// stamped names matches chronological order, which ListUserConfigBackups
// relies on.
const backupStamp = "20060102-150405"

// BackupUserConfig copies the user config aside under a timestamped name
// and prunes the oldest backups beyond MaxBackups. Returns the backup
// path, or "" when there is no user config to back up.
func BackupUserConfig() (string, error) {
	configPath := GetUserConfigPath()
	if !UserConfigExists() {
		return "", nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read config for backup: %w", err)
	}

	backupPath := configPath + BackupSuffix + "." + time.Now().Format(backupStamp)
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	// Pruning is best-effort once the backup itself is on disk
	_ = pruneBackups()

	return backupPath, nil
}

// ListUserConfigBackups returns the user config's backup files, newest
// first.
func ListUserConfigBackups() ([]string, error) {
	pattern := GetUserConfigPath() + BackupSuffix + ".*"
	backups, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list config backups: %w", err)
	}

	// Stamped names sort chronologically, so newest first is reverse
	// lexical order
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// pruneBackups removes the oldest backups beyond MaxBackups.
func pruneBackups() error {
	backups, err := ListUserConfigBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		_ = os.Remove(backups[i])
	}
	return nil
}
