package banhammer

import (
	"fmt"
	"io"
	"strings"
)

var hashTableSalt = Salt{0x9846e4f157fe8840, 0xc5f318d7e055afb8}

// HashTable maps oldspeak words to optional newspeak words.
// _lists_ are the bucket chains; a slot stays nil until a key hashes to it
// _count_ is the number of non-nil slots, not the number of entries
// _mtf_ is handed to every bucket list the table creates
// _stats_ is shared by all bucket lists
type HashTable struct {
	lists  []*LinkedList
	count  uint
	mtf    bool
	hasher Hasher
	stats  *SeekStats
}

// NewHashTable creates a HashTable with _size_ buckets
func NewHashTable(size uint, mtf bool, opts ...Option) (*HashTable, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}
	o := makeOptions(opts)
	return &HashTable{
		lists:  make([]*LinkedList, size),
		mtf:    mtf,
		hasher: o.hasher,
		stats:  &SeekStats{},
	}, nil
}

// Lookup returns the node holding _oldspeak_. Empty buckets answer without
// counting a seek.
func (table *HashTable) Lookup(oldspeak string) (*Node, bool) {
	if table == nil || oldspeak == "" {
		return nil, false
	}
	list := table.lists[table.getIndex(oldspeak)]
	if list == nil {
		return nil, false
	}
	return list.Lookup(oldspeak)
}

// Insert adds _oldspeak_ with the replacement _newspeak_. First write wins.
func (table *HashTable) Insert(oldspeak, newspeak string) {
	if list := table.bucket(oldspeak); list != nil {
		list.Insert(oldspeak, newspeak)
	}
}

// InsertKey adds _oldspeak_ without a replacement. First write wins.
func (table *HashTable) InsertKey(oldspeak string) {
	if list := table.bucket(oldspeak); list != nil {
		list.InsertKey(oldspeak)
	}
}

func (table *HashTable) bucket(oldspeak string) *LinkedList {
	if table == nil || oldspeak == "" {
		return nil
	}
	index := table.getIndex(oldspeak)
	if table.lists[index] == nil {
		table.lists[index] = newLinkedList(table.mtf, table.stats)
		table.count++
	}
	return table.lists[index]
}

// Size returns the number of buckets
func (table *HashTable) Size() uint {
	if table == nil {
		return 0
	}
	return uint(len(table.lists))
}

// Count returns the number of non-empty buckets
func (table *HashTable) Count() uint {
	if table == nil {
		return 0
	}
	return table.count
}

// Load returns Count/Size
func (table *HashTable) Load() float64 {
	if table.Size() == 0 {
		return 0
	}
	return float64(table.count) / float64(len(table.lists))
}

// Stats returns the lookup counters shared by every bucket
func (table *HashTable) Stats() *SeekStats {
	if table == nil {
		return nil
	}
	return table.stats
}

func (table *HashTable) Seeks() uint64 {
	return table.Stats().Seeks()
}

func (table *HashTable) Links() uint64 {
	return table.Stats().Links()
}

func (table *HashTable) AverageSeekLength() float64 {
	return table.Stats().AverageSeekLength()
}

// WriteTo writes every bucket as a blank line and an index label followed by
// its entries
func (table *HashTable) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, table.String())
	return int64(n), err
}

func (table *HashTable) String() string {
	if table == nil {
		return ""
	}
	var sb strings.Builder
	for i, list := range table.lists {
		fmt.Fprintf(&sb, "\n[%d]\n", i)
		sb.WriteString(list.String())
	}
	return sb.String()
}

// Close drops every bucket. The table reads as empty afterwards.
func (table *HashTable) Close() {
	if table == nil {
		return
	}
	for i, list := range table.lists {
		list.Reset()
		table.lists[i] = nil
	}
	table.count = 0
}

func (table *HashTable) getIndex(oldspeak string) uint {
	return uint(table.hasher.Sum64(hashTableSalt, oldspeak) % uint64(len(table.lists)))
}
