package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeUserConfig redirects the user config to a temp dir and puts a
// config file there, returning its path.
func writeUserConfig(t *testing.T, content string) string {
	t.Helper()
	dir := redirectUserConfig(t)

	configDir := filepath.Join(dir, "lexindex")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestBackupUserConfig_NoConfig(t *testing.T) {
	redirectUserConfig(t)

	backupPath, err := BackupUserConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backupPath != "" {
		t.Errorf("expected no backup without a config, got %s", backupPath)
	}
}

func TestBackupUserConfig_CopiesContent(t *testing.T) {
	content := "version: 1\nplay:\n  initial_count: 6\n"
	writeUserConfig(t, content)

	backupPath, err := BackupUserConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backupPath == "" {
		t.Fatal("expected a backup path")
	}
	if !strings.Contains(filepath.Base(backupPath), BackupSuffix+".") {
		t.Errorf("backup name should carry a %s stamp, got %s", BackupSuffix, backupPath)
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(got) != content {
		t.Errorf("backup content mismatch:\ngot:  %q\nwant: %q", got, content)
	}
}

func TestListUserConfigBackups_Empty(t *testing.T) {
	redirectUserConfig(t)

	backups, err := ListUserConfigBackups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestListUserConfigBackups_NewestFirst(t *testing.T) {
	configPath := writeUserConfig(t, "test")

	// Fabricated backups with ascending stamps
	stamps := []string{"20260101-100000", "20260101-110000", "20260101-120000"}
	for _, stamp := range stamps {
		name := configPath + BackupSuffix + "." + stamp
		if err := os.WriteFile(name, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to fabricate backup: %v", err)
		}
	}

	backups, err := ListUserConfigBackups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i, want := range []string{"20260101-120000", "20260101-110000", "20260101-100000"} {
		if !strings.HasSuffix(backups[i], want) {
			t.Errorf("backups[%d] = %s, want suffix %s", i, backups[i], want)
		}
	}
}

func TestBackupUserConfig_PrunesOldBackups(t *testing.T) {
	configPath := writeUserConfig(t, "test config")

	// A deep fabricated history, then one real backup on top
	for day := 1; day <= 5; day++ {
		name := fmt.Sprintf("%s%s.202601%02d-090000", configPath, BackupSuffix, day)
		if err := os.WriteFile(name, []byte("old"), 0644); err != nil {
			t.Fatalf("failed to fabricate backup: %v", err)
		}
	}

	if _, err := BackupUserConfig(); err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	backups, err := ListUserConfigBackups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after pruning, got %d", MaxBackups, len(backups))
	}
}

func TestWriteYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := NewConfig()
	cfg.Alphabet.Symbols = "0123456789"
	cfg.Server.LogLevel = "info"

	if err := cfg.WriteYAML(configPath); err != nil {
		t.Fatalf("failed to write YAML: %v", err)
	}

	// Verify file exists and is readable
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if len(data) == 0 {
		t.Error("written file is empty")
	}

	// Verify it contains expected content
	content := string(data)
	if !strings.Contains(content, `symbols: "0123456789"`) {
		t.Errorf("written file should contain the alphabet, got:\n%s", content)
	}
	if !strings.Contains(content, "log_level: info") {
		t.Error("written file should contain log_level: info")
	}
}
