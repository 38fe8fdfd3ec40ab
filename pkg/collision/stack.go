package collision

// Stack holds the contacts found during one phase of a tick. Contacts come
// back out in reverse order of insertion.
type Stack struct {
	contacts []Contact
}

func (s *Stack) Push(c Contact) {
	s.contacts = append(s.contacts, c)
}

// Pop removes the most recently pushed contact.
func (s *Stack) Pop() (Contact, bool) {
	n := len(s.contacts)
	if n == 0 {
		return Contact{}, false
	}

	c := s.contacts[n-1]
	s.contacts[n-1] = Contact{}
	s.contacts = s.contacts[:n-1]
	return c, true
}

func (s *Stack) Len() int {
	return len(s.contacts)
}

// Reset drops every contact but keeps the backing array for the next tick.
func (s *Stack) Reset() {
	clear(s.contacts)
	s.contacts = s.contacts[:0]
}
