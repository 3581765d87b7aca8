// Package levels finds and decodes level files. It depends on core but
// core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// Level is a validated level file. Grid holds the raw description; Build
// turns it into fresh simulation state.
type Level struct {
	ID       string
	Name     string
	Author   string
	Width    int
	Height   int
	Grid     []byte
	Metadata map[string]string
	FilePath string
}

// Build parses the grid into a new core.Level. Every call returns
// independent state, so a restart is a second Build.
func (l Level) Build() (*core.Level, error) {
	return core.ParseLevel(l.Grid)
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// EditedBy reports whether a change to path concerns l. edited is what
// path decoded to, possibly with an error; a file that could not be read
// still matches when it is l's own file.
func (l Level) EditedBy(path string, edited Level) bool {
	if l.FilePath != "" && SamePath(l.FilePath, path) {
		return true
	}
	return edited.ID != "" && edited.ID == l.ID
}

// SamePath reports whether a and b name the same file once cleaned and
// made absolute.
func SamePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// Loader reads levels from a file system tree.
type Loader struct {
	// FS is walked from its root.
	FS fs.FS
	// Root is how the tree is named in FilePath and error messages.
	Root string
	// Logger receives skipped-file warnings. Nil means log.Default().
	Logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// NewFSLoader creates a loader over fsys, labelled name.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{FS: fsys, Root: name}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin tree: %v", err))
	}
	return NewFSLoader(sub, "builtin")
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll walks the tree and loads every supported file. Files that fail
// to decode or validate are skipped with a warning, as are later files
// reusing an ID. The result is sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.FS, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(path.Ext(name)) {
			return nil
		}

		lvl, err := l.LoadFile(name)
		if err != nil {
			l.logger().Warn("skipping level", "file", lvl.FilePath, "error", err)
			return nil
		}
		if prev, dup := seen[lvl.ID]; dup {
			l.logger().Warn("skipping duplicate level id", "id", lvl.ID, "file", lvl.FilePath, "first", prev)
			return nil
		}
		seen[lvl.ID] = lvl.FilePath

		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads one file, name being slash separated and relative to the
// loader root. On error the returned Level still carries FilePath.
func (l *Loader) LoadFile(name string) (Level, error) {
	filePath := filepath.Join(l.Root, filepath.FromSlash(name))

	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return Level{FilePath: filePath}, fmt.Errorf("levels: reading %s: %w", filePath, err)
	}
	lvl, err := Decode(data, name)
	lvl.FilePath = filePath
	if err != nil {
		return lvl, fmt.Errorf("levels: %s: %w", filePath, err)
	}
	return lvl, nil
}

// LoadByID returns the level with the given ID.
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
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
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

// LoadPath loads a single level file from disk, outside any loader tree.
func LoadPath(filePath string) (Level, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Level{FilePath: filePath}, fmt.Errorf("levels: reading %s: %w", filePath, err)
	}
	lvl, err := Decode(data, filePath)
	lvl.FilePath = filePath
	if err != nil {
		return lvl, fmt.Errorf("levels: %s: %w", filePath, err)
	}
	return lvl, nil
}

// Decode parses data using the format implied by name's extension and
// validates the grid. The ID defaults to the file name without extension
// and is set even when validation fails.
func Decode(data []byte, name string) (Level, error) {
	ext := path.Ext(filepath.ToSlash(name))
	stem := strings.TrimSuffix(path.Base(filepath.ToSlash(name)), ext)

	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Level{ID: stem}, err
	}

	lvl := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Author:   parsed.Author,
		Grid:     parsed.Grid,
		Metadata: parsed.Metadata,
	}
	if lvl.ID == "" {
		lvl.ID = stem
	}

	built, err := lvl.Build()
	if err != nil {
		return lvl, err
	}
	lvl.Width = built.Room.Width()
	lvl.Height = built.Room.Height()
	return lvl, nil
}
