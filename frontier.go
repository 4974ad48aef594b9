package nfa

// levelEntry is one active-state slot within a single frontier level.
// next links it to the following entry at the same level (an intrusive
// list), and nested, when non-nil, is the head of this state's own
// nested frontier.
type levelEntry[T, D any] struct {
	state  State
	next   int
	nested *frontier[T, D]
}

// frontier is one nesting level of a Matcher's active-state set: a
// growable array of entries linked via levelEntry.next, addressed by
// a head index. Each nesting level has its own frontier value.
type frontier[T, D any] struct {
	entries []levelEntry[T, D]
	first   int
}

func newFrontier[T, D any]() *frontier[T, D] {
	return &frontier[T, D]{first: noIndex}
}

// isActive reports whether s already occupies a slot at this level.
func (lvl *frontier[T, D]) isActive(s State) bool {
	for i := lvl.first; i != noIndex; i = lvl.entries[i].next {
		if lvl.entries[i].state == s {
			return true
		}
	}
	return false
}

// headIsFinal reports whether this level is non-empty and its first
// entry is Final, per invariant 4.
func (lvl *frontier[T, D]) headIsFinal() bool {
	return lvl.first != noIndex && lvl.entries[lvl.first].state == Final
}

// insert adds s as a new entry, preserving invariant 4: if Final
// already occupies the head, s is threaded in immediately after it
// rather than displacing it.
func (lvl *frontier[T, D]) insert(s State) int {
	idx := len(lvl.entries)
	if s != Final && lvl.headIsFinal() {
		head := lvl.first
		lvl.entries = append(lvl.entries, levelEntry[T, D]{state: s, next: lvl.entries[head].next})
		lvl.entries[head].next = idx
		return idx
	}
	lvl.entries = append(lvl.entries, levelEntry[T, D]{state: s, next: lvl.first})
	lvl.first = idx
	return idx
}
