package dictionary

// trie is a 26-way prefix tree over uppercase A-Z. It backs both exact
// membership and prefix-existence queries in O(len) time; the latter is
// what makes the solver's exhaustive search tractable.
type trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children [26]*trieNode
	terminal bool
}

func newTrie() *trie {
	return &trie{root: &trieNode{}}
}

// insert adds a word and reports whether it was not already present.
// The word must already be uppercase A-Z.
func (t *trie) insert(word string) bool {
	node := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		if node.children[idx] == nil {
			node.children[idx] = &trieNode{}
		}
		node = node.children[idx]
	}
	if node.terminal {
		return false
	}
	node.terminal = true
	t.size++
	return true
}

// walk descends to the node for the given letter sequence, or nil if no
// stored word passes through it
func (t *trie) walk(s string) *trieNode {
	node := t.root
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return nil
		}
		node = node.children[c-'A']
		if node == nil {
			return nil
		}
	}
	return node
}

// contains reports exact membership
func (t *trie) contains(word string) bool {
	node := t.walk(word)
	return node != nil && node.terminal
}

// hasPrefix reports whether any stored word starts with the given
// character sequence
func (t *trie) hasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

func (t *trie) len() int {
	return t.size
}

// words returns every stored word, in sorted order (depth-first over
// the ordered children)
func (t *trie) words() []string {
	out := make([]string, 0, t.size)
	var visit func(node *trieNode, prefix []byte)
	visit = func(node *trieNode, prefix []byte) {
		if node.terminal {
			out = append(out, string(prefix))
		}
		for i, child := range node.children {
			if child != nil {
				visit(child, append(prefix, byte('A'+i)))
			}
		}
	}
	visit(t.root, nil)
	return out
}
