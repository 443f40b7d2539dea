package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/klauspost/readahead"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// source is one named input.
type source struct {
	name string
	path string // empty for stdin
}

func (s source) isStdin() bool { return s.path == "" }

// read returns the full content of s.
func (s source) read() ([]byte, error) {
	r := stdin

	if !s.isStdin() {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err).With(slog.String("file", s.name))
		}
		defer f.Close()

		r = f
	}

	data, err := readAll(r)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("file", s.name))
	}

	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	return io.ReadAll(ra)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// sources resolves the command-line inputs. No paths, or "-", select stdin.
// Paths naming the same file (through symlinks or relative forms) are read
// once, and stdin is placed last.
func sources(paths []string) ([]source, error) {
	if len(paths) == 0 {
		return []source{{name: stdinSource}}, nil
	}

	var (
		out      = make([]source, 0, len(paths))
		seen     = make(map[fileKey]struct{})
		useStdin bool
	)

	for _, p := range paths {
		if p == stdinSource {
			useStdin = true

			continue
		}

		resolved, err := filepath.EvalSymlinks(p)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err).With(slog.String("file", p))
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err).With(slog.String("file", p))
		}

		if key, ok := makeFileKey(info); ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		out = append(out, source{name: p, path: resolved})
	}

	if useStdin {
		out = append(out, source{name: stdinSource})
	}

	return out, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
