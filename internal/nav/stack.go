package nav

// Stack 导航返回栈，底部总是起始目的地
// Stack is the back stack. Its bottom entry is the start destination and is
// never popped.
type Stack struct {
	entries []Destination
}

// NewStack creates a stack rooted at start.
func NewStack(start Destination) *Stack {
	return &Stack{entries: []Destination{start}}
}

// Current returns the top destination.
func (s *Stack) Current() Destination {
	return s.entries[len(s.entries)-1]
}

// Push navigates to d.
func (s *Stack) Push(d Destination) {
	s.entries = append(s.entries, d)
}

// Pop navigates back. It reports false, leaving the stack unchanged, at the
// start destination.
func (s *Stack) Pop() bool {
	if len(s.entries) <= 1 {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return true
}

// Depth returns the number of entries, the start destination included.
func (s *Stack) Depth() int { return len(s.entries) }
