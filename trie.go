package execshell

import "slices"

// trieNode is a single character position in a PrefixIndex.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool // path from the root to this node is a stored sequence
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// PrefixIndex stores submitted lines as rune sequences and answers
// "every stored sequence that starts with this prefix".
//
// The index is append-only. Each node exclusively owns its children, so
// lookups always walk down from the root and no parent links are kept.
// The zero value is not usable; create one with NewPrefixIndex.
type PrefixIndex struct {
	root *trieNode
	size int
}

// NewPrefixIndex creates an empty index.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{root: newTrieNode()}
}

// Insert stores seq. Inserting the same sequence again has no effect,
// and an empty sequence is never stored.
func (t *PrefixIndex) Insert(seq []rune) {
	if len(seq) == 0 {
		return
	}
	node := t.root
	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Len returns the number of stored sequences.
func (t *PrefixIndex) Len() int {
	return t.size
}

// MatchPrefix returns every stored sequence that starts with prefix,
// including prefix itself when it was stored. The boolean is false when
// no stored sequence has the prefix at all; that is a normal outcome and
// not an error.
//
// Results are ordered depth first with children visited in ascending
// rune order, and a sequence precedes its own extensions. Callers that
// only display the list should not depend on the order.
func (t *PrefixIndex) MatchPrefix(prefix []rune) ([][]rune, bool) {
	start := t.find(prefix)
	if start == nil {
		return nil, false
	}

	// One shared path buffer is pushed and popped as the walk enters and
	// leaves nodes, so each result is copied exactly once.
	type frame struct {
		node  *trieNode
		keys  []rune
		next  int
		depth int
	}

	path := append(make([]rune, 0, len(prefix)+8), prefix...)
	var results [][]rune
	if start.terminal {
		results = append(results, cloneRunes(path))
	}

	stack := []frame{{node: start, keys: sortedKeys(start), depth: len(path)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.keys) {
			stack = stack[:len(stack)-1]
			continue
		}
		r := top.keys[top.next]
		top.next++
		child := top.node.children[r]

		path = append(path[:top.depth], r)
		if child.terminal {
			results = append(results, cloneRunes(path))
		}
		if len(child.children) > 0 {
			stack = append(stack, frame{node: child, keys: sortedKeys(child), depth: len(path)})
		}
	}
	return results, true
}

// Complete is MatchPrefix for strings.
func (t *PrefixIndex) Complete(prefix string) ([]string, bool) {
	seqs, ok := t.MatchPrefix([]rune(prefix))
	if !ok {
		return nil, false
	}
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = string(s)
	}
	return out, true
}

// find walks seq from the root and returns nil as soon as a character is missing.
func (t *PrefixIndex) find(seq []rune) *trieNode {
	node := t.root
	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

func sortedKeys(n *trieNode) []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

func cloneRunes(r []rune) []rune {
	return append([]rune(nil), r...)
}
