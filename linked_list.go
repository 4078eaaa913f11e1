package banhammer

import (
	"io"
	"strings"
)

const (
	nilIndex  = -1
	headIndex = 0
	tailIndex = 1
)

// SeekStats counts the work done by LinkedList lookups.
// _seeks_ is the number of lookups issued
// _links_ is the number of node-to-node hops walked during those lookups
type SeekStats struct {
	seeks uint64
	links uint64
}

func (s *SeekStats) Seeks() uint64 {
	if s == nil {
		return 0
	}
	return s.seeks
}

func (s *SeekStats) Links() uint64 {
	if s == nil {
		return 0
	}
	return s.links
}

// AverageSeekLength returns links per seek, 0 before the first seek
func (s *SeekStats) AverageSeekLength() float64 {
	if s.Seeks() == 0 {
		return 0
	}
	return float64(s.links) / float64(s.seeks)
}

// LinkedList is a doubly linked list of Nodes kept in an append-only arena.
// _nodes_ holds every node ever inserted; index 0 is the head sentinel and index 1
// the tail sentinel, and the chain order lives in the nodes' prev/next indices.
// Nodes are never removed, so a *Node returned by Lookup stays valid while the
// list is reordered.
// _mtf_ enables the move-to-front rule on successful lookups
// _stats_ may be shared with sibling lists of the same HashTable
type LinkedList struct {
	nodes  []*Node
	length uint
	mtf    bool
	stats  *SeekStats
}

// NewLinkedList creates an empty list with its own SeekStats
func NewLinkedList(mtf bool) *LinkedList {
	return newLinkedList(mtf, &SeekStats{})
}

func newLinkedList(mtf bool, stats *SeekStats) *LinkedList {
	list := &LinkedList{mtf: mtf, stats: stats}
	list.linkSentinels()
	return list
}

func (list *LinkedList) linkSentinels() {
	head := &Node{prev: nilIndex, next: tailIndex}
	tail := &Node{prev: headIndex, next: nilIndex}
	list.nodes = []*Node{head, tail}
	list.length = 0
}

// Length returns the number of entries in the list
func (list *LinkedList) Length() uint {
	if list == nil {
		return 0
	}
	return list.length
}

// Stats returns the counters the list reports its lookups to
func (list *LinkedList) Stats() *SeekStats {
	if list == nil {
		return nil
	}
	return list.stats
}

// Lookup returns the node holding _oldspeak_. With move-to-front enabled a hit
// is relinked right after the head sentinel.
func (list *LinkedList) Lookup(oldspeak string) (*Node, bool) {
	if list == nil || oldspeak == "" {
		return nil, false
	}
	list.stats.seeks++
	for i := list.nodes[headIndex].next; i != tailIndex; i = list.nodes[i].next {
		if list.nodes[i].oldspeak == oldspeak {
			if list.mtf {
				list.moveToFront(i)
			}
			return list.nodes[i], true
		}
		list.stats.links++
	}
	return nil, false
}

// Insert adds _oldspeak_ with its replacement _newspeak_. A key already in the
// list keeps its first value.
func (list *LinkedList) Insert(oldspeak, newspeak string) {
	list.insert(oldspeak, newspeak, true)
}

// InsertKey adds _oldspeak_ without a replacement
func (list *LinkedList) InsertKey(oldspeak string) {
	list.insert(oldspeak, "", false)
}

func (list *LinkedList) insert(oldspeak, newspeak string, hasNewspeak bool) {
	if list == nil || oldspeak == "" {
		return
	}
	if _, ok := list.Lookup(oldspeak); ok {
		return
	}
	index := len(list.nodes)
	list.nodes = append(list.nodes, &Node{
		oldspeak:    oldspeak,
		newspeak:    newspeak,
		hasNewspeak: hasNewspeak,
	})
	list.pushFront(index)
	list.length++
}

func (list *LinkedList) moveToFront(index int) {
	node := list.nodes[index]
	if node.prev == headIndex {
		return
	}
	list.nodes[node.prev].next = node.next
	list.nodes[node.next].prev = node.prev
	list.pushFront(index)
}

func (list *LinkedList) pushFront(index int) {
	head := list.nodes[headIndex]
	node := list.nodes[index]
	node.prev = headIndex
	node.next = head.next
	list.nodes[head.next].prev = index
	head.next = index
}

// Front returns the first entry, nil for an empty list
func (list *LinkedList) Front() *Node {
	if list.Length() == 0 {
		return nil
	}
	return list.nodes[list.nodes[headIndex].next]
}

// Nodes returns the entries in chain order
func (list *LinkedList) Nodes() []*Node {
	if list.Length() == 0 {
		return nil
	}
	nodes := make([]*Node, 0, list.length)
	for i := list.nodes[headIndex].next; i != tailIndex; i = list.nodes[i].next {
		nodes = append(nodes, list.nodes[i])
	}
	return nodes
}

// Reset drops every entry. The shared stats are left untouched.
func (list *LinkedList) Reset() {
	if list == nil {
		return
	}
	list.linkSentinels()
}

// WriteTo writes one entry per line in chain order
func (list *LinkedList) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, list.String())
	return int64(n), err
}

func (list *LinkedList) String() string {
	var sb strings.Builder
	for _, node := range list.Nodes() {
		sb.WriteString(node.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
