package manifest

// FileSet is an insertion ordered set of slash separated source-relative
// paths.
type FileSet struct {
	order []string
	index map[string]struct{}
}

// NewFileSet returns an empty set
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]struct{})}
}

// Add appends p unless already present and reports whether it was added
func (s *FileSet) Add(p string) bool {
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// RemoveFunc removes every path for which match returns true, keeping the
// relative order of the rest, and returns how many were removed.
func (s *FileSet) RemoveFunc(match func(string) bool) int {
	kept := s.order[:0]
	removed := 0
	for _, p := range s.order {
		if match(p) {
			delete(s.index, p)
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.order = kept
	return removed
}

// Contains reports whether p is in the set
func (s *FileSet) Contains(p string) bool {
	_, ok := s.index[p]
	return ok
}

// Len returns the number of paths
func (s *FileSet) Len() int {
	return len(s.order)
}

// Paths returns a copy of the paths in insertion order
func (s *FileSet) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
