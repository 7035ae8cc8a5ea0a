package generator

// codeSet keeps accepted codes in acceptance order with O(1) membership checks.
type codeSet struct {
	seen  map[string]struct{}
	order []string
}

func newCodeSet(capacity int) *codeSet {
	return &codeSet{
		seen:  make(map[string]struct{}, capacity),
		order: make([]string, 0, capacity),
	}
}

// Add inserts code and reports whether it was new.
func (s *codeSet) Add(code string) bool {
	if _, exists := s.seen[code]; exists {
		return false
	}
	s.seen[code] = struct{}{}
	s.order = append(s.order, code)
	return true
}

func (s *codeSet) Size() int {
	return len(s.order)
}

func (s *codeSet) Codes() []string {
	return s.order
}
