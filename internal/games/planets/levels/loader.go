package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/planetmatch/internal/games/planets/levels/formats"
)

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every valid level file under Root, sorted by ID.
// Unreadable or invalid files are reported through skipped, not as an
// error, so one broken file does not hide the rest.
func (l *Loader) LoadAll() ([]Level, error) {
	lvls, _, err := l.LoadAllReport()
	return lvls, err
}

// LoadAllReport is LoadAll that also returns the errors of skipped files.
func (l *Loader) LoadAllReport() ([]Level, []error, error) {
	var (
		lvls    []Level
		skipped []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		lvls = append(lvls, lvl)
		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})
	return lvls, skipped, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	lvl := Level{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Width:       parsed.Width,
		Height:      parsed.Height,
		Moves:       parsed.Moves,
		TargetScore: parsed.TargetScore,
		TypeCount:   parsed.TypeCount,
		Layout:      parsed.Layout,
		Metadata:    parsed.Metadata,
		FilePath:    path,
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	if lvl, ok := Find(lvls, id); ok {
		return lvl, nil
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// Campaign returns the built-in levels followed by the custom levels in
// dir. An empty dir or a missing directory yields just the built-ins.
// Custom levels replace built-ins with the same ID.
func Campaign(dir string) ([]Level, []error, error) {
	lvls := Builtin()
	if dir == "" {
		return lvls, nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return lvls, nil, nil
	}

	custom, skipped, err := NewLoader(dir).LoadAllReport()
	if err != nil {
		return nil, skipped, err
	}
	for _, c := range custom {
		idx := slices.IndexFunc(lvls, func(b Level) bool { return b.ID == c.ID })
		if idx >= 0 {
			lvls[idx] = c
			continue
		}
		lvls = append(lvls, c)
	}
	return lvls, skipped, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
