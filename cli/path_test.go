package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUserDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	got := userDir(func() (string, error) { return root, nil }, ".unused")
	if want := filepath.Join(root, baseName()); got != want {
		t.Errorf("userDir() = %q, want %q", got, want)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got = userDir(func() (string, error) { return "", errors.New("unset") }, ".fallback")
	if want := filepath.Join(home, ".fallback", baseName()); got != want {
		t.Errorf("userDir() fallback = %q, want %q", got, want)
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	name := baseName()
	if name == "" || name[0] == '.' || filepath.Ext(name) != "" {
		t.Errorf("baseName() = %q", name)
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	if got, want := configPath("config.yaml"), filepath.Join(configDir(), "config.yaml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}
