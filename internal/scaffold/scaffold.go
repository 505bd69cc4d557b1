// Package scaffold writes embedded files and generated documents into an
// output directory, refusing to overwrite existing content.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/antarctica/mdlib/internal/logging"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Writer creates output trees.
type Writer struct {
	logger mdlib.Logger
}

// NewWriter creates a Writer. A nil logger discards messages.
func NewWriter(logger mdlib.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Writer{logger: logger}
}

// CopyFS copies every file under root in src to targetPath, keeping the
// relative layout. Returns the number of files written.
func (w *Writer) CopyFS(src fs.FS, root, targetPath string) (int, error) {
	files := make(map[string][]byte)
	err := fs.WalkDir(src, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("failed to read embedded file %s: %w", path, err)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, root), "/")
		files[rel] = content
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(files), w.WriteFiles(targetPath, files)
}

// WriteFiles writes files (keyed by slash separated relative path) under
// targetPath, which must be empty or not yet exist.
func (w *Writer) WriteFiles(targetPath string, files map[string][]byte) error {
	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory '%s' is not empty", targetPath)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(targetPath, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		w.logger.Verbose("Creating file: %s", name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	return nil
}

// isDirectoryEmpty reports whether path is an empty directory or does not
// exist.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory")
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// BuildFileTree renders the directory tree under rootPath.
func BuildFileTree(rootPath string) (string, error) {
	var sb strings.Builder
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}
	sb.WriteString(absPath + "/\n")

	var walk func(dir, prefix string) error
	walk = func(dir, prefix string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for i, entry := range entries {
			branch, next := "├── ", "│   "
			if i == len(entries)-1 {
				branch, next = "└── ", "    "
			}
			name := entry.Name()
			if entry.IsDir() {
				name += "/"
			}
			sb.WriteString(prefix + branch + name + "\n")
			if entry.IsDir() {
				if err := walk(filepath.Join(dir, entry.Name()), prefix+next); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(rootPath, ""); err != nil {
		return "", fmt.Errorf("failed to build file tree: %w", err)
	}
	return sb.String(), nil
}
