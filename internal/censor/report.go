package censor

import (
	"fmt"
	"io"
	"strings"
)

// Outcome is the classification of a single word.
type Outcome int

const (
	// OutcomeClean words are in neither list (or were bloom false positives).
	OutcomeClean Outcome = iota
	// OutcomeForbidden words are badspeak with no replacement.
	OutcomeForbidden
	// OutcomeSubstitute words are oldspeak with a newspeak replacement.
	OutcomeSubstitute
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeSubstitute:
		return "substitute"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Verdict summarises a batch of words.
type Verdict int

const (
	VerdictClean Verdict = iota
	// VerdictThoughtcrime: forbidden words only.
	VerdictThoughtcrime
	// VerdictRightspeak: words with replacements only.
	VerdictRightspeak
	// VerdictMixspeak: both kinds.
	VerdictMixspeak
)

func (v Verdict) String() string {
	switch v {
	case VerdictClean:
		return "clean"
	case VerdictThoughtcrime:
		return "thoughtcrime"
	case VerdictRightspeak:
		return "rightspeak"
	case VerdictMixspeak:
		return "mixspeak"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Event is one flagged word of the query stream.
type Event struct {
	Word     string
	Outcome  Outcome
	Newspeak string
}

// Report holds every flagged event of a scan plus the de-duplicated words to
// print back.
type Report struct {
	Events     []Event
	Badspeak   *OrderedSet
	Rightspeak *OrderedSet
}

func newReport() *Report {
	return &Report{Badspeak: NewOrderedSet(), Rightspeak: NewOrderedSet()}
}

func (r *Report) record(word string, outcome Outcome, newspeak string) {
	switch outcome {
	case OutcomeForbidden:
		r.Badspeak.Add(Entry{Oldspeak: word})
	case OutcomeSubstitute:
		r.Rightspeak.Add(Entry{Oldspeak: word, Newspeak: newspeak, HasNewspeak: true})
	default:
		return
	}
	r.Events = append(r.Events, Event{Word: word, Outcome: outcome, Newspeak: newspeak})
}

// Count returns how many events flagged _word_ with _outcome_
func (r *Report) Count(word string, outcome Outcome) int {
	n := 0
	for _, e := range r.Events {
		if e.Word == word && e.Outcome == outcome {
			n++
		}
	}
	return n
}

func (r *Report) Verdict() Verdict {
	bad, right := r.Badspeak.Len() > 0, r.Rightspeak.Len() > 0
	switch {
	case bad && right:
		return VerdictMixspeak
	case bad:
		return VerdictThoughtcrime
	case right:
		return VerdictRightspeak
	default:
		return VerdictClean
	}
}

// WriteTo writes the verdict message followed by the flagged words. A clean
// report writes nothing.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	switch r.Verdict() {
	case VerdictMixspeak:
		sb.WriteString(mixspeakMessage)
		sb.WriteString(r.Badspeak.String())
		sb.WriteString(r.Rightspeak.String())
	case VerdictThoughtcrime:
		sb.WriteString(thoughtcrimeMessage)
		sb.WriteString(r.Badspeak.String())
	case VerdictRightspeak:
		sb.WriteString(rightspeakMessage)
		sb.WriteString(r.Rightspeak.String())
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Stats are the load and search-depth metrics of a loaded Censor.
type Stats struct {
	Seeks             uint64
	AverageSeekLength float64
	// HashTableLoad is the percentage of non-empty buckets.
	HashTableLoad float64
	// BloomFilterLoad is the percentage of set bits.
	BloomFilterLoad float64
}

func (s Stats) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"Seeks: %d\nAverage seek length: %.6f\nHash table load: %.6f%%\nBloom filter load: %.6f%%\n",
		s.Seeks, s.AverageSeekLength, s.HashTableLoad, s.BloomFilterLoad)
	return int64(n), err
}
