package screens

import (
	"robocompany/common"
	"robocompany/observable"
)

// HomeState is the click counter of a Home screen entry
type HomeState struct {
	counter *observable.Value[int]
}

func NewHomeState() *HomeState {
	return &HomeState{counter: observable.NewValue(0)}
}

func (hs *HomeState) Counter() observable.Reader[int] {
	return hs.counter
}

func (hs *HomeState) Click() int {
	next := hs.counter.Get() + 1
	hs.counter.Set(next)
	return next
}

func (hs *HomeState) ShowsMilestone() bool {
	return hs.counter.Get() > common.MilestoneClicks
}
