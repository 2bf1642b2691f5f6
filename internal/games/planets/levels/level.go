// Package levels describes planet-match levels: the built-in campaign and
// YAML level files loaded from a directory.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
)

// ErrInvalidLevel is wrapped by Validate failures.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is one playable level definition.
type Level struct {
	ID          string
	Name        string
	Width       int
	Height      int
	Moves       int
	TargetScore int
	// TypeCount overrides the configured planet type count when non-zero.
	TypeCount int
	// Layout optionally fixes the opening board, top row first, one digit
	// per planet type.
	Layout   []string
	Metadata map[string]string
	FilePath string
}

// Params converts the level to engine parameters. typeCount is used when
// the level does not set its own.
func (l Level) Params(typeCount int) engine.Params {
	if l.TypeCount > 0 {
		typeCount = l.TypeCount
	}
	return engine.Params{
		Width:       l.Width,
		Height:      l.Height,
		Moves:       l.Moves,
		TargetScore: l.TargetScore,
		TypeCount:   typeCount,
	}
}

// Board parses the fixed layout, or returns nil if the level has none.
func (l Level) Board() (*engine.Board, error) {
	if len(l.Layout) == 0 {
		return nil, nil
	}
	b, err := engine.ParseBoard(l.Layout...)
	if err != nil {
		return nil, fmt.Errorf("levels: %s layout: %w", l.ID, err)
	}
	return b, nil
}

// Validate checks the level is playable on its own terms.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	p := l.Params(engine.MinTypeCount)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidLevel, l.ID, err)
	}
	if len(l.Layout) == 0 {
		return nil
	}
	b, err := l.Board()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	if b.Width() != l.Width || b.Height() != l.Height {
		return fmt.Errorf("%w: %s: layout is %dx%d, level is %dx%d",
			ErrInvalidLevel, l.ID, b.Width(), b.Height(), l.Width, l.Height)
	}
	if b.EmptyCount() > 0 {
		return fmt.Errorf("%w: %s: layout has empty cells", ErrInvalidLevel, l.ID)
	}
	if l.TypeCount > 0 {
		for _, t := range b.Tokens() {
			if t >= l.TypeCount {
				return fmt.Errorf("%w: %s: layout uses type %d of %d", ErrInvalidLevel, l.ID, t, l.TypeCount)
			}
		}
	}
	return nil
}

// DisplayName returns the name, falling back to the ID.
func (l Level) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Builtin returns the campaign in play order. The first level uses the
// classic 8x8 board with five moves and a target of 160.
func Builtin() []Level {
	return []Level{
		{ID: "01-first-orbit", Name: "First Orbit", Width: 8, Height: 8, Moves: 5, TargetScore: 160},
		{ID: "02-inner-belt", Name: "Inner Belt", Width: 8, Height: 8, Moves: 8, TargetScore: 300},
		{ID: "03-red-giant", Name: "Red Giant", Width: 7, Height: 9, Moves: 10, TargetScore: 420},
		{ID: "04-ice-rings", Name: "Ice Rings", Width: 9, Height: 7, Moves: 10, TargetScore: 480},
		{ID: "05-nebula", Name: "Nebula", Width: 8, Height: 8, Moves: 12, TargetScore: 600, TypeCount: 7},
		{ID: "06-binary-star", Name: "Binary Star", Width: 6, Height: 10, Moves: 12, TargetScore: 650},
		{ID: "07-dark-matter", Name: "Dark Matter", Width: 10, Height: 8, Moves: 15, TargetScore: 900, TypeCount: 7},
		{ID: "08-event-horizon", Name: "Event Horizon", Width: 9, Height: 9, Moves: 15, TargetScore: 1000, TypeCount: 8},
	}
}

// Find returns the level with the given ID.
func Find(lvls []Level, id string) (Level, bool) {
	for _, l := range lvls {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}
