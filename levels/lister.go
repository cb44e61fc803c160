// Package levels stores .LEV files in a directory: listing them for the
// load screen, writing saved levels and watching the directory for changes.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Ext is the level file extension. Matching is case-insensitive.
const Ext = ".lev"

// IsLevelFile reports whether path names a level file.
func IsLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// DirLister lists the level files of one directory in name order.
type DirLister struct {
	Dir   string
	names []string
}

func NewDirLister(dir string) *DirLister {
	return &DirLister{Dir: dir}
}

// Refresh rescans the directory. A missing directory lists as empty.
func (l *DirLister) Refresh() error {
	l.names = l.names[:0]
	entries, err := os.ReadDir(l.Dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("levels: read dir %s: %w", l.Dir, err)
	}
	for _, e := range entries {
		if e.Type().IsRegular() && IsLevelFile(e.Name()) {
			l.names = append(l.names, e.Name())
		}
	}
	slices.SortFunc(l.names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return nil
}

func (l *DirLister) Reset() { l.names = nil }

func (l *DirLister) Len() int { return len(l.names) }

func (l *DirLister) Name(i int) string { return l.names[i] }

func (l *DirLister) Load(i int) ([]byte, error) {
	return ReadFile(filepath.Join(l.Dir, l.names[i]))
}

// ReadFile reads one level file.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return data, nil
}

// FileWriter saves levels into Dir, creating it when needed.
type FileWriter struct {
	Dir string
}

// Write stores data under name. The file is written next to its final
// path and renamed, so a failed save never truncates an existing level.
func (w FileWriter) Write(name string, data []byte) error {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("levels: invalid level name %q", name)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("levels: create dir %s: %w", w.Dir, err)
	}

	f, err := os.CreateTemp(w.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("levels: write %s: %w", name, err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("levels: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("levels: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(w.Dir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("levels: write %s: %w", name, err)
	}
	return nil
}
