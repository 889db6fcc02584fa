// Package words provides the dictionary used by the Anagram Rift.
//
// The dictionary is a lookup set of lowercase alphabetic words. It loads
// from a file (one word per line) when a path is configured, and falls back
// to the embedded default list otherwise.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed default_words.txt
var embeddedWords string

// minLen drops one and two letter entries; the rift never accepts them
const minLen = 3

// Dictionary is a read-only word set. Safe for concurrent use.
type Dictionary struct {
	set map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary built from the embedded word list
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = FromList(strings.Split(embeddedWords, "\n"))
	})
	return defaultDict
}

// Load reads a dictionary file. An empty path returns the default list.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("word list %s has no usable words", path)
	}
	return d, nil
}

// Read builds a dictionary from one word per line
func Read(r io.Reader) (*Dictionary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromList(list), nil
}

// FromList normalizes words to lowercase and keeps alphabetic entries of
// at least three letters
func FromList(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) >= minLen && isAlpha(w) {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// Contains reports whether the lowercase word is in the dictionary
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

// Len returns the number of words loaded
func (d *Dictionary) Len() int {
	return len(d.set)
}

// isAlpha reports whether s is all lowercase ASCII letters
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
