// Package rift implements the Anagram Rift, a timed side-game played on the
// letters already revealed on the board.
//
// The pool is static for the life of a rift: each submission is checked
// against the full pool and accepted words never use tiles up.
package rift

import (
	"strings"
	"time"

	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

// RiftError is a custom error type for rejected rift actions
type RiftError string

// Error implements the error interface
func (e RiftError) Error() string {
	return string(e)
}

const (
	ErrTooFewLetters    RiftError = "at least 3 revealed letters are needed to open the rift"
	ErrInactive         RiftError = "the rift is not active"
	ErrTooShort         RiftError = "word is too short"
	ErrDuplicate        RiftError = "word already used"
	ErrNotAWord         RiftError = "word not in dictionary"
	ErrNotEnoughLetters RiftError = "not enough letters"
)

// Wildcard is the tile that stands in for any letter
const Wildcard = '*'

const (
	// MinDistinctLetters gates the rift trigger
	MinDistinctLetters = 3

	// wildcardBelow adds wildcards to small pools
	wildcardBelow = 5
)

// PayoutMode decides what a closed rift pays out
type PayoutMode string

const (
	// PayoutReveal uncovers one hidden consonant per accepted word
	PayoutReveal PayoutMode = "reveal"

	// PayoutCash credits CashPerWord per accepted word to the round bank
	PayoutCash PayoutMode = "cash"

	// PayoutNone pays nothing
	PayoutNone PayoutMode = "none"
)

// Config holds the tuning of a rift
type Config struct {
	Duration    time.Duration
	MaxWilds    int
	MinWordLen  int
	Payout      PayoutMode
	CashPerWord int
}

// DefaultConfig returns the standard rift tuning
func DefaultConfig() Config {
	return Config{
		Duration:    45 * time.Second,
		MaxWilds:    2,
		MinWordLen:  3,
		Payout:      PayoutReveal,
		CashPerWord: 100,
	}
}

// Dictionary is the membership test words are checked against
type Dictionary interface {
	Contains(lowercaseWord string) bool
}

// Rift is one running anagram round
type Rift struct {
	cfg       Config
	active    bool
	pool      []rune
	usedWords []string
	used      map[string]bool
	endsAt    time.Time
}

// Start opens a rift on the distinct revealed letters. Small pools get
// cfg.MaxWilds wildcard tiles.
func Start(revealed []rune, cfg Config, now time.Time) (*Rift, error) {
	seen := make(map[rune]bool, len(revealed))
	pool := make([]rune, 0, len(revealed)+cfg.MaxWilds)
	for _, r := range revealed {
		r = toUpper(r)
		if seen[r] {
			continue
		}
		seen[r] = true
		pool = append(pool, r)
	}
	if len(pool) < MinDistinctLetters {
		return nil, ErrTooFewLetters
	}
	if len(pool) < wildcardBelow {
		for i := 0; i < cfg.MaxWilds; i++ {
			pool = append(pool, Wildcard)
		}
	}

	return &Rift{
		cfg:    cfg,
		active: true,
		pool:   pool,
		used:   make(map[string]bool),
		endsAt: now.Add(cfg.Duration),
	}, nil
}

// Submit validates and scores a word. Rejections leave the rift unchanged.
// Returns the normalized (uppercase) word on success.
func (r *Rift) Submit(word string, dict Dictionary) (string, error) {
	if r == nil || !r.active {
		return "", ErrInactive
	}

	normalized := strings.ToUpper(strings.TrimSpace(word))
	if len([]rune(normalized)) < r.cfg.MinWordLen {
		return "", ErrTooShort
	}
	if r.used[normalized] {
		return "", ErrDuplicate
	}
	if !dict.Contains(strings.ToLower(normalized)) {
		return "", ErrNotAWord
	}
	if !CanBuild(normalized, r.pool) {
		return "", ErrNotEnoughLetters
	}

	r.used[normalized] = true
	r.usedWords = append(r.usedWords, normalized)
	return normalized, nil
}

// CanBuild reports whether the word can be laid from the pool, using a
// literal tile when one is left and a wildcard otherwise. The pool passed in
// is not modified.
func CanBuild(word string, pool []rune) bool {
	tiles := make(map[rune]int, len(pool))
	for _, t := range pool {
		tiles[t]++
	}
	for _, c := range word {
		switch {
		case tiles[c] > 0:
			tiles[c]--
		case tiles[Wildcard] > 0:
			tiles[Wildcard]--
		default:
			return false
		}
	}
	return true
}

// End deactivates the rift. Returns false when it was already closed.
func (r *Rift) End() bool {
	if r == nil || !r.active {
		return false
	}
	r.active = false
	return true
}

// Active reports whether words are still accepted
func (r *Rift) Active() bool {
	return r != nil && r.active
}

// Score is the number of accepted words
func (r *Rift) Score() int {
	if r == nil {
		return 0
	}
	return len(r.usedWords)
}

// Config returns the rift tuning
func (r *Rift) Config() Config {
	return r.cfg
}

// EndsAt is the rift deadline
func (r *Rift) EndsAt() time.Time {
	return r.endsAt
}

// View returns a read-only snapshot
func (r *Rift) View() *models.RiftView {
	if r == nil {
		return nil
	}
	return &models.RiftView{
		Active:     r.active,
		Pool:       append([]rune(nil), r.pool...),
		UsedWords:  append([]string(nil), r.usedWords...),
		ScoreCount: len(r.usedWords),
		EndsAt:     r.endsAt,
	}
}

// RevealPayout uncovers up to n hidden consonants in phrase order and
// returns the letters uncovered
func RevealPayout(b *board.Board, n int) []rune {
	var out []rune
	for _, c := range b.UnrevealedConsonants() {
		if len(out) >= n {
			break
		}
		b.Uncover(c)
		out = append(out, c)
	}
	return out
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
