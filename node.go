package banhammer

// Node is an entry of a LinkedList: an oldspeak word and, optionally, the
// newspeak word that replaces it.
// _prev_ and _next_ are arena indices owned by the enclosing list.
type Node struct {
	oldspeak    string
	newspeak    string
	hasNewspeak bool
	prev        int
	next        int
}

// Key returns the oldspeak word
func (n *Node) Key() string {
	if n == nil {
		return ""
	}
	return n.oldspeak
}

// Value returns the newspeak word and whether the node carries one
func (n *Node) Value() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.newspeak, n.hasNewspeak
}

// HasValue reports whether the node carries a newspeak word
func (n *Node) HasValue() bool {
	return n != nil && n.hasNewspeak
}

// String renders the node as "old" or "old->new"
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	if n.hasNewspeak {
		return n.oldspeak + "->" + n.newspeak
	}
	return n.oldspeak
}
