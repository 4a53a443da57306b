package ui

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTTY_NonTerminalWriters(t *testing.T) {
	tests := []struct {
		name string
		w    io.Writer
	}{
		{"nil writer", nil},
		{"bytes buffer", &bytes.Buffer{}},
		{"nil file", (*os.File)(nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsTTY(tc.w))
		})
	}
}

func TestDetectNoColor(t *testing.T) {
	t.Run("set to a value", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.True(t, DetectNoColor())
	})

	t.Run("set but empty still disables color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.True(t, DetectNoColor())
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv("NO_COLOR", "x") // register restore, then drop it
		_ = os.Unsetenv("NO_COLOR")
		assert.False(t, DetectNoColor())
	})
}

func TestDetectCI(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv clears for this test
	unsetCIEnv := func(t *testing.T) {
		t.Helper()
		for _, v := range ciEnvVars {
			t.Setenv(v, "")
			_ = os.Unsetenv(v)
		}
	}

	t.Run("generic CI variable", func(t *testing.T) {
		unsetCIEnv(t)
		t.Setenv("CI", "true")
		assert.True(t, DetectCI())
	})

	t.Run("github actions", func(t *testing.T) {
		unsetCIEnv(t)
		t.Setenv("GITHUB_ACTIONS", "true")
		assert.True(t, DetectCI())
	})

	t.Run("empty value is not CI", func(t *testing.T) {
		unsetCIEnv(t)
		t.Setenv("CI", "")
		assert.False(t, DetectCI())
	})

	t.Run("no variables set", func(t *testing.T) {
		unsetCIEnv(t)
		assert.False(t, DetectCI())
	})
}
