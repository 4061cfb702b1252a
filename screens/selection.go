package screens

import "sort"

// Selection keeps the highlight toggles of the robot list by position.
// It is owned by the UI loop and not safe for concurrent use.
type Selection struct {
	selected map[int]bool
}

func NewSelection() *Selection {
	return &Selection{selected: make(map[int]bool)}
}

func (s *Selection) Toggle(index int) bool {
	if s.selected[index] {
		delete(s.selected, index)
		return false
	}
	s.selected[index] = true
	return true
}

func (s *Selection) IsSelected(index int) bool {
	return s.selected[index]
}

func (s *Selection) Selected() []int {
	indices := make([]int, 0, len(s.selected))
	for index := range s.selected {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}
