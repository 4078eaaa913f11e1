// Package words turns raw text into the lowercase word stream the filter consumes.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrUnpairedWord is returned when a pair list ends with an oldspeak word that
// has no newspeak word.
var ErrUnpairedWord = errors.New("words: oldspeak word without a newspeak word")

// wordPattern matches runs of [a-zA-Z0-9_] joined by single hyphens or apostrophes
var wordPattern = regexp.MustCompile(`[a-zA-Z0-9_]+(['-][a-zA-Z0-9_]+)*`)

// Pair is an oldspeak word and its newspeak replacement.
type Pair struct {
	Oldspeak string
	Newspeak string
}

// maxWordLength bounds a single word, not a line
const maxWordLength = 1024 * 1024

// Scanner yields the lowercased words of a text stream one at a time.
type Scanner struct {
	words *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	words := bufio.NewScanner(r)
	words.Buffer(make([]byte, 0, 64*1024), maxWordLength)
	words.Split(scanWord)
	return &Scanner{words: words}
}

// scanWord is a bufio.SplitFunc returning one wordPattern match per token.
// A match that reaches the last byte of _data_ may continue in the next read,
// so it is held back until more input or EOF arrives.
func scanWord(data []byte, atEOF bool) (int, []byte, error) {
	loc := wordPattern.FindIndex(data)
	if loc == nil {
		return len(data), nil, nil
	}
	if !atEOF && loc[1] >= len(data)-1 {
		return loc[0], nil, nil
	}
	return loc[1], data[loc[0]:loc[1]], nil
}

// Next advances to the next word. It returns false at the end of the stream or
// on a read error, which Err reports.
func (s *Scanner) Next() (string, bool) {
	if !s.words.Scan() {
		return "", false
	}
	return strings.ToLower(s.words.Text()), true
}

func (s *Scanner) Err() error {
	return s.words.Err()
}

// All drains the scanner
func (s *Scanner) All() ([]string, error) {
	var all []string
	for {
		word, ok := s.Next()
		if !ok {
			break
		}
		all = append(all, word)
	}
	return all, s.Err()
}

// ReadList reads whitespace separated words, one entry per word
func ReadList(r io.Reader) ([]string, error) {
	fields := bufio.NewScanner(r)
	fields.Split(bufio.ScanWords)
	var list []string
	for fields.Scan() {
		list = append(list, fields.Text())
	}
	if err := fields.Err(); err != nil {
		return nil, fmt.Errorf("words: error reading list: %w", err)
	}
	return list, nil
}

// ReadPairs reads whitespace separated words as alternating oldspeak and
// newspeak entries
func ReadPairs(r io.Reader) ([]Pair, error) {
	list, err := ReadList(r)
	if err != nil {
		return nil, err
	}
	if len(list)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnpairedWord, list[len(list)-1])
	}
	pairs := make([]Pair, 0, len(list)/2)
	for i := 0; i < len(list); i += 2 {
		pairs = append(pairs, Pair{Oldspeak: list[i], Newspeak: list[i+1]})
	}
	return pairs, nil
}
