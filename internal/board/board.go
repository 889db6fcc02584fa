package board

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/wheelrift/internal/models"
)

// ErrNoLetters is returned for a phrase without any alphabetic character
const ErrNoLetters BoardError = "phrase has no letters"

// BoardError is a custom error type for board errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// Vowels in the fixed order used for effects and the AI
const Vowels = "AEIOU"

// Board tracks the active puzzle and which letters are revealed or guessed.
// Revealing a letter reveals all of its occurrences.
type Board struct {
	category string
	phrase   string
	revealed map[rune]bool
	guessed  map[rune]bool
	order    []rune // guess order, for display
}

// New creates a board for the puzzle. The phrase is trimmed and uppercased.
func New(category, phrase string) (*Board, error) {
	normalized := strings.ToUpper(strings.TrimSpace(phrase))
	if !hasLetter(normalized) {
		return nil, ErrNoLetters
	}
	return &Board{
		category: category,
		phrase:   normalized,
		revealed: make(map[rune]bool),
		guessed:  make(map[rune]bool),
	}, nil
}

// Category returns the puzzle category label
func (b *Board) Category() string {
	return b.category
}

// Phrase returns the normalized puzzle text
func (b *Board) Phrase() string {
	return b.phrase
}

// Reveal guesses a letter. The letter is always recorded as guessed and is
// revealed when it occurs in the phrase. Returns the occurrence count.
func (b *Board) Reveal(letter rune) int {
	letter = unicode.ToUpper(letter)
	if !b.guessed[letter] {
		b.guessed[letter] = true
		b.order = append(b.order, letter)
	}
	return b.Uncover(letter)
}

// Uncover reveals a letter without marking it guessed (effect reveals)
func (b *Board) Uncover(letter rune) int {
	letter = unicode.ToUpper(letter)
	n := b.Count(letter)
	if n > 0 {
		b.revealed[letter] = true
	}
	return n
}

// Count returns how many times the letter occurs in the phrase
func (b *Board) Count(letter rune) int {
	return strings.Count(b.phrase, string(unicode.ToUpper(letter)))
}

// IsGuessed reports whether the letter was already attempted
func (b *Board) IsGuessed(letter rune) bool {
	return b.guessed[unicode.ToUpper(letter)]
}

// IsRevealed reports whether the letter is showing on the board
func (b *Board) IsRevealed(letter rune) bool {
	return b.revealed[unicode.ToUpper(letter)]
}

// IsUsed reports whether the letter was guessed or is already showing
func (b *Board) IsUsed(letter rune) bool {
	return b.IsGuessed(letter) || b.IsRevealed(letter)
}

// IsSolved reports whether every letter of the phrase is revealed
func (b *Board) IsSolved() bool {
	for _, r := range b.phrase {
		if isLetter(r) && !b.revealed[r] {
			return false
		}
	}
	return true
}

// MatchesSolution compares a guess against the phrase after trimming and
// case normalization
func (b *Board) MatchesSolution(guess string) bool {
	return strings.ToUpper(strings.TrimSpace(guess)) == b.phrase
}

// RevealAll uncovers every letter, used when the puzzle is solved outright
func (b *Board) RevealAll() {
	for _, r := range b.phrase {
		if isLetter(r) {
			b.revealed[r] = true
		}
	}
}

// Needed returns the distinct unrevealed letters in phrase order
func (b *Board) Needed() []rune {
	return b.distinct(func(r rune) bool { return !b.revealed[r] })
}

// RevealedLetters returns the distinct revealed letters in phrase order
func (b *Board) RevealedLetters() []rune {
	return b.distinct(func(r rune) bool { return b.revealed[r] })
}

// UnrevealedConsonants returns distinct hidden consonants in phrase order
func (b *Board) UnrevealedConsonants() []rune {
	return b.distinct(func(r rune) bool { return !b.revealed[r] && IsConsonant(r) })
}

// FirstUnrevealedVowel returns the first hidden vowel in phrase order
func (b *Board) FirstUnrevealedVowel() (rune, bool) {
	for _, r := range b.phrase {
		if IsVowel(r) && !b.revealed[r] {
			return r, true
		}
	}
	return 0, false
}

// HasUnguessedVowel reports whether any vowel is still open for purchase
func (b *Board) HasUnguessedVowel() bool {
	for _, v := range Vowels {
		if !b.IsUsed(v) {
			return true
		}
	}
	return false
}

// Masked renders the phrase with hidden letters as underscores
func (b *Board) Masked() string {
	var sb strings.Builder
	for _, r := range b.phrase {
		if isLetter(r) && !b.revealed[r] {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := &Board{
		category: b.category,
		phrase:   b.phrase,
		revealed: make(map[rune]bool, len(b.revealed)),
		guessed:  make(map[rune]bool, len(b.guessed)),
		order:    append([]rune(nil), b.order...),
	}
	for k, v := range b.revealed {
		c.revealed[k] = v
	}
	for k, v := range b.guessed {
		c.guessed[k] = v
	}
	return c
}

// View returns a read-only snapshot of the board
func (b *Board) View() *models.BoardView {
	return &models.BoardView{
		Category: b.category,
		Phrase:   b.phrase,
		Masked:   b.Masked(),
		Revealed: b.RevealedLetters(),
		Guessed:  append([]rune(nil), b.order...),
		Needed:   b.Needed(),
		Solved:   b.IsSolved(),
	}
}

func (b *Board) distinct(keep func(r rune) bool) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range b.phrase {
		if !isLetter(r) || seen[r] {
			continue
		}
		seen[r] = true
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// IsVowel reports whether r is one of A, E, I, O, U (either case)
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, unicode.ToUpper(r))
}

// IsConsonant reports whether r is an ASCII letter that is not a vowel
func IsConsonant(r rune) bool {
	return isLetter(unicode.ToUpper(r)) && !IsVowel(r)
}

// ParseLetter validates a single-letter input and returns it uppercased
func ParseLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, false
	}
	r := unicode.ToUpper(rune(s[0]))
	if !isLetter(r) {
		return 0, false
	}
	return r, true
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func hasLetter(s string) bool {
	for _, r := range s {
		if isLetter(r) {
			return true
		}
	}
	return false
}
