package tour

// Item is one pending depth-first extension: try extending Tour by City at
// the given edge Cost. Items form a singly linked list owned by exactly one
// worker at a time.
type Item struct {
	Tour Tour // partial tour up to (not including) City
	City int  // city under consideration
	Cost int  // cost of the edge from Tour.Last() to City
	next *Item
}

// Stack is a LIFO of pending extensions with an incrementally maintained
// length, so size checks during load balancing are O(1).
//
// A Stack is not safe for concurrent use; the solver guarantees exclusive
// ownership except during Split/Adopt, which it serializes itself.
type Stack struct {
	top *Item
	n   int
}

// Push adds a new pending extension on top of the stack.
func (s *Stack) Push(t Tour, city, cost int) {
	s.top = &Item{Tour: t, City: city, Cost: cost, next: s.top}
	s.n++
}

// Pop removes and returns the top item. ok is false when the stack is empty.
func (s *Stack) Pop() (t Tour, city, cost int, ok bool) {
	if s.top == nil {
		return Tour{}, 0, 0, false
	}
	it := s.top
	s.top = it.next
	it.next = nil
	s.n--
	return it.Tour, it.City, it.Cost, true
}

// Len returns the number of pending items.
func (s *Stack) Len() int { return s.n }

// Empty reports whether the stack holds no items.
func (s *Stack) Empty() bool { return s.top == nil }

// Split partitions the stack by strict alternation: the first item stays,
// the second moves to the donated half, the third stays, and so on.
// Relative order is preserved within both halves, whose sizes differ by at
// most one (the receiver keeps the larger half). The donated half is
// returned as a new stack ready for adoption by another worker.
//
// Split requires Len() ≥ 2; the caller checks this before donating.
// The alternating cut keeps both halves a mix of shallow and deep search
// states instead of handing one side all the deep subtrees.
func (s *Stack) Split() *Stack {
	donated := &Stack{}

	keepTail := s.top
	donated.top = s.top.next
	donateTail := donated.top
	keepTail.next = nil

	rest := donateTail.next
	donateTail.next = nil

	kept, given := 1, 1
	for rest != nil {
		keepTail.next = rest
		keepTail = rest
		rest = rest.next
		keepTail.next = nil
		kept++

		if rest != nil {
			donateTail.next = rest
			donateTail = rest
			rest = rest.next
			donateTail.next = nil
			given++
		}
	}

	s.n = kept
	donated.n = given
	return donated
}

// Adopt replaces the contents of s with those of other, transferring
// ownership of other's items. other is left empty.
func (s *Stack) Adopt(other *Stack) {
	s.top = other.top
	s.n = other.n
	other.top = nil
	other.n = 0
}
