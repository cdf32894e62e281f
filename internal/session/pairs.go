package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jmylchreest/huecheck/internal/colour"
)

var (
	// ErrDuplicatePair is returned when saving a pair that is already saved.
	ErrDuplicatePair = errors.New("pair already saved")

	// ErrPairNotFound is returned for an unknown pair ID.
	ErrPairNotFound = errors.New("pair not found")
)

// Pair is a saved foreground/background combination.
type Pair struct {
	ID         string      `json:"id"`
	Foreground colour.RGBA `json:"foreground"`
	Background colour.RGBA `json:"background"`
	CreatedAt  time.Time   `json:"createdAt"`

	fgText, bgText string
}

// ScoredPair is a saved pair with its contrast on the session's backdrop.
type ScoredPair struct {
	Pair
	Ratio  float64       `json:"ratio"`
	Rating colour.Rating `json:"rating"`
}

// SavePair saves the current foreground and background. Pairs are compared
// by hex, so the same two colours are only saved once.
func (s *Session) SavePair() (Pair, error) {
	fg := s.Colour(colour.TargetForeground)
	bg := s.Colour(colour.TargetBackground)
	if s.IsDuplicate(fg, bg) {
		return Pair{}, fmt.Errorf("%s on %s: %w", fg.Hex(), bg.Hex(), ErrDuplicatePair)
	}

	p := Pair{
		ID:         uuid.NewString(),
		Foreground: fg,
		Background: bg,
		CreatedAt:  s.now(),
		fgText:     s.Text(colour.TargetForeground),
		bgText:     s.Text(colour.TargetBackground),
	}
	s.pairs = append([]Pair{p}, s.pairs...)
	s.logger.Debug("saved pair", "id", p.ID, "foreground", fg.Hex(), "background", bg.Hex(), "pairs", len(s.pairs))
	return p, nil
}

// IsDuplicate reports whether fg on bg is already saved.
func (s *Session) IsDuplicate(fg, bg colour.RGBA) bool {
	return slices.ContainsFunc(s.pairs, func(p Pair) bool {
		return p.Foreground.Hex() == fg.Hex() && p.Background.Hex() == bg.Hex()
	})
}

// Pairs returns the saved pairs, newest first, each scored against the
// current backdrop.
func (s *Session) Pairs() []ScoredPair {
	out := make([]ScoredPair, len(s.pairs))
	for i, p := range s.pairs {
		ratio := colour.ContrastRatio(colour.Composite(p.Foreground, s.backdrop), colour.Composite(p.Background, s.backdrop))
		out[i] = ScoredPair{Pair: p, Ratio: ratio, Rating: colour.Rate(ratio)}
	}
	return out
}

// SelectPair makes a saved pair the current foreground and background.
func (s *Session) SelectPair(id string) error {
	i := s.pairIndex(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrPairNotFound)
	}
	p := s.pairs[i]
	s.sides[colour.TargetForeground] = &side{text: p.fgText, colour: p.Foreground}
	s.sides[colour.TargetBackground] = &side{text: p.bgText, colour: p.Background}
	return nil
}

// RemovePair deletes a saved pair.
func (s *Session) RemovePair(id string) error {
	i := s.pairIndex(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrPairNotFound)
	}
	s.pairs = slices.Delete(slices.Clone(s.pairs), i, i+1)
	return nil
}

func (s *Session) pairIndex(id string) int {
	return slices.IndexFunc(s.pairs, func(p Pair) bool { return p.ID == id })
}
