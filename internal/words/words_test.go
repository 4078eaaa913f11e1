package words

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerSplitsAndLowers(t *testing.T) {
	s := NewScanner(strings.NewReader("The QUICK brown-fox isn't here.\n\n  it's a_b 42!\n"))
	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "quick", "brown-fox", "isn't", "here", "it's", "a_b", "42"}, all)
}

func TestScannerRejectsDoubledJoiners(t *testing.T) {
	s := NewScanner(strings.NewReader("well--known don''t -lead trail- a-'b"))
	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"well", "known", "don", "t", "lead", "trail", "a", "b"}, all)
}

func TestScannerLongLine(t *testing.T) {
	line := strings.Repeat("word ", 300000) + "Last"
	all, err := NewScanner(strings.NewReader(line)).All()
	require.NoError(t, err)
	require.Len(t, all, 300001)
	assert.Equal(t, "word", all[0])
	assert.Equal(t, "last", all[300000])
}

func TestScannerWordAcrossReads(t *testing.T) {
	r := iotest.OneByteReader(strings.NewReader("don't well-known\nbad"))
	all, err := NewScanner(r).All()
	require.NoError(t, err)
	assert.Equal(t, []string{"don't", "well-known", "bad"}, all)
}

func TestScannerEmpty(t *testing.T) {
	s := NewScanner(strings.NewReader(""))
	_, ok := s.Next()
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func TestReadList(t *testing.T) {
	list, err := ReadList(strings.NewReader("bad\nworse\n\n  worst\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "worse", "worst"}, list)
}

func TestReadPairs(t *testing.T) {
	pairs, err := ReadPairs(strings.NewReader("ignorant uninformed\nhate dislike\n"))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Oldspeak: "ignorant", Newspeak: "uninformed"},
		{Oldspeak: "hate", Newspeak: "dislike"},
	}, pairs)
}

func TestReadPairsUnpaired(t *testing.T) {
	_, err := ReadPairs(strings.NewReader("ignorant uninformed hate"))
	require.ErrorIs(t, err, ErrUnpairedWord)
}
