// Package levels loads level packs for the launcher game.
// Levels are YAML files; a default pack is embedded in the binary.
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

	"github.com/vovakirdan/tile-launcher/internal/games/launch/levels/formats"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
)

//go:embed defaults/*.yaml
var defaultPack embed.FS

// Level is a parsed level plus where it came from.
type Level struct {
	sim.LevelData
	FilePath string
}

// FileError describes a level file that failed to load.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Default returns a loader over the embedded level pack.
func Default() *Loader {
	sub, err := fs.Sub(defaultPack, "defaults")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return &Loader{Root: "embedded", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID in natural order,
// so "2-ramp" comes before "10-finale" with or without zero padding.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Validate loads every level file and reports the ones that fail.
func (l *Loader) Validate() ([]Level, []FileError, error) {
	return l.scan()
}

func (l *Loader) scan() ([]Level, []FileError, error) {
	var levels []Level
	var bad []FileError

	err := fs.WalkDir(l.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(name))) {
			return nil
		}

		level, err := l.LoadFile(name)
		if err != nil {
			bad = append(bad, FileError{Path: l.displayPath(name), Err: err})
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return naturalLess(levels[i].ID, levels[j].ID)
	})
	return levels, bad, nil
}

// naturalLess compares strings with digit runs ordered by numeric value.
// Runs that differ only in leading zeros compare equal.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, db := digitRun(a), digitRun(b)
		if da != "" && db != "" {
			na, nb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			a, b = a[len(da):], b[len(db):]
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return a == "" && b != ""
}

func digitRun(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// LoadFile loads a single level file, relative to the loader root.
// A level without an id takes the file name.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, filepath.ToSlash(name))
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(name)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}

	return Level{LevelData: parsed, FilePath: l.displayPath(name)}, nil
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

// Data strips file information for the simulation.
func Data(levels []Level) []sim.LevelData {
	out := make([]sim.LevelData, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.LevelData
	}
	return out
}

func (l *Loader) displayPath(name string) string {
	return filepath.Join(l.Root, filepath.FromSlash(name))
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (sim.LevelData, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return sim.LevelData{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
