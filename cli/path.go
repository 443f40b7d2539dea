package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/jsxc/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

var defaultDirMode os.FileMode = 0o700

// exeRules rewrite the executable name into the directory base name.
var exeRules = []struct {
	rex *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`^__debug_bin\d*$`), pkg.Name}, // dlv default output
	{regexp.MustCompile(`^\.+`), ""},
}

// baseName returns the name of the per-user directories: the executable name
// without extension, rewritten by [exeRules].
var baseName = sync.OnceValue(func() string {
	exe := os.Args[0]
	if path, err := os.Executable(); err == nil {
		exe = path
	}

	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	for _, r := range exeRules {
		name = r.rex.ReplaceAllString(name, r.rep)
	}

	if name == "" {
		return pkg.Name
	}

	return name
})

// userDir joins [baseName] to the directory returned by root, falling back to
// fallback under the home directory, then the working directory.
func userDir(root func() (string, error), fallback string) string {
	dir, err := root()
	if err != nil {
		if dir, err = os.UserHomeDir(); err == nil {
			dir = filepath.Join(dir, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, baseName())
}

var (
	configDir = sync.OnceValue(func() string { return userDir(os.UserConfigDir, ".config") })
	cacheDir  = sync.OnceValue(func() string { return userDir(os.UserCacheDir, ".cache") })
)

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
