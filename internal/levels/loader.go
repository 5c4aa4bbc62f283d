// Package levels loads level definitions from files and registers the
// builtin levels. This package depends on platformer but platformer does not
// depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
)

// Level is a parsed, validated level and where it came from.
type Level struct {
	platformer.LevelDefinition
	FilePath string
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// newFSLoader creates a loader over an arbitrary file system.
func newFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, root: root}
}

// LoadAll recursively scans and loads all level files, skipping files that
// fail to parse or validate. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// LoadAllStrict is LoadAll but reports every file that failed.
func (l *Loader) LoadAllStrict() ([]Level, []error, error) {
	return l.scan()
}

func (l *Loader) scan() ([]Level, []error, error) {
	var (
		levels []Level
		bad    []error
	)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			bad = append(bad, fmt.Errorf("reading file %s: %w", l.display(p), err))
			return nil
		}
		def, err := formats.Parse(data, path.Ext(p))
		if err != nil {
			bad = append(bad, fmt.Errorf("parsing file %s: %w", l.display(p), err))
			return nil
		}

		levels = append(levels, Level{LevelDefinition: def, FilePath: l.display(p)})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, bad, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) display(p string) string {
	return filepath.Join(l.root, filepath.FromSlash(p))
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	def, err := formats.Parse(data, filepath.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return Level{LevelDefinition: def, FilePath: p}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
