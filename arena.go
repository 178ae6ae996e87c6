package rectclip

// none marks a missing node, fragment or bucket index.
const none = -1

// outPt is a point of an output fragment. Fragments are circular doubly linked lists of nodes addressed by their index in the arena.
type outPt[T Number] struct {
	pt    Point[T]
	owner int // fragment index in the result table
	edge  int // bucket index or none
	next  int
	prev  int
}

// arena owns all nodes created while clipping one path. Indices stay valid until reset, which releases all nodes at once.
type arena[T Number] struct {
	ops []outPt[T]
}

// alloc returns a new node linked to itself.
func (a *arena[T]) alloc(pt Point[T], owner int) int {
	i := len(a.ops)
	a.ops = append(a.ops, outPt[T]{
		pt:    pt,
		owner: owner,
		edge:  none,
		next:  i,
		prev:  i,
	})
	return i
}

func (a *arena[T]) reset() {
	a.ops = a.ops[:0]
}

// insertAfter links node op after prev.
func (a *arena[T]) insertAfter(prev, op int) {
	next := a.ops[prev].next
	a.ops[op].next = next
	a.ops[op].prev = prev
	a.ops[next].prev = op
	a.ops[prev].next = op
}

// unlink removes op from its fragment and returns the following node, or none when op was the last one.
func (a *arena[T]) unlink(op int) int {
	if a.ops[op].next == op {
		return none
	}
	prev, next := a.ops[op].prev, a.ops[op].next
	a.ops[prev].next = next
	a.ops[next].prev = prev
	return next
}

// unlinkBack removes op from its fragment and returns the preceding node, or none when op was the last one.
func (a *arena[T]) unlinkBack(op int) int {
	if a.ops[op].next == op {
		return none
	}
	prev, next := a.ops[op].prev, a.ops[op].next
	a.ops[prev].next = next
	a.ops[next].prev = prev
	return prev
}

// setOwner assigns all nodes of the fragment containing op to fragment owner.
func (a *arena[T]) setOwner(op, owner int) {
	a.ops[op].owner = owner
	for op2 := a.ops[op].next; op2 != op; op2 = a.ops[op2].next {
		a.ops[op2].owner = owner
	}
}

// isDegenerate is true for fragments of one or two nodes.
func (a *arena[T]) isDegenerate(op int) bool {
	return a.ops[op].next == a.ops[op].prev
}
