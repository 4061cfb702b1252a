package navigation

import (
	"robocompany/common"
	"robocompany/errdefs"
	"robocompany/observable"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Entry is one screen on the back stack. Every push creates a new ID, so a
// screen that is pushed again gets a fresh entry.
type Entry struct {
	ID     string
	Screen common.Screen
}

type TransitionFunc func() error

type RemovedListener func(entry Entry)

// Navigator is the navigation graph of the app: Home and Robots, one edge
// each way. It keeps the back stack and reports entries that leave it.
type Navigator struct {
	mu               sync.Mutex
	stack            []Entry
	current          *observable.Value[Entry]
	removedListeners []RemovedListener
}

var routes = map[common.Screen]bool{
	common.HOME:   true,
	common.ROBOTS: true,
}

func NewNavigator() *Navigator {
	start := newEntry(common.HOME)

	return &Navigator{
		stack:   []Entry{start},
		current: observable.NewValue(start),
	}
}

func newEntry(screen common.Screen) Entry {
	return Entry{ID: uuid.NewString(), Screen: screen}
}

func (n *Navigator) getTransitionFunc(from common.Screen, to common.Screen) TransitionFunc {
	var transitionMap = map[common.Screen]map[common.Screen]TransitionFunc{
		common.HOME: {
			// user selects the company entry
			common.ROBOTS: func() error { return n.Navigate(common.ROBOTS) },
		},
		common.ROBOTS: {
			// user selects "Members": back to a fresh Home, nothing else left
			common.HOME: func() error { return n.NavigateClearing(common.HOME, common.HOME, true) },
		},
	}

	return transitionMap[from][to]
}

// Transition follows the graph edge from the current screen to the given one
func (n *Navigator) Transition(to common.Screen) error {
	if !routes[to] {
		return errors.Wrapf(errdefs.ErrUnknownRoute, "%s", to)
	}

	from := n.Current().Screen
	transitionFunc := n.getTransitionFunc(from, to)
	if transitionFunc == nil {
		return errors.Wrapf(errdefs.ErrInvalidTransition, "%s -> %s", from, to)
	}

	log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("navigating")

	return transitionFunc()
}

func (n *Navigator) GoToRobots() error {
	return n.Transition(common.ROBOTS)
}

func (n *Navigator) ResetToHome() error {
	return n.Transition(common.HOME)
}

// Navigate pushes a new entry for the route
func (n *Navigator) Navigate(route common.Screen) error {
	return n.NavigateClearing(route, "", false)
}

// NavigateClearing pops the stack up to the most recent entry of popUpTo
// (including it when inclusive is set) and then pushes a new entry for
// route. An empty popUpTo, or one that is not on the stack, pops nothing.
func (n *Navigator) NavigateClearing(route common.Screen, popUpTo common.Screen, inclusive bool) error {
	if !routes[route] {
		return errors.Wrapf(errdefs.ErrUnknownRoute, "%s", route)
	}

	if popUpTo != "" && !routes[popUpTo] {
		return errors.Wrapf(errdefs.ErrUnknownRoute, "%s", popUpTo)
	}

	n.mu.Lock()

	var removed []Entry
	if popUpTo != "" {
		index := n.lastIndexOf(popUpTo)
		if index >= 0 {
			keep := index + 1
			if inclusive {
				keep = index
			}
			removed = n.popTo(keep)
		}
	}

	entry := newEntry(route)
	n.stack = append(n.stack, entry)
	listeners := n.listeners()

	n.mu.Unlock()

	n.publish(entry, removed, listeners)

	return nil
}

// Back pops the top entry. The last entry is never popped, false is returned instead.
func (n *Navigator) Back() bool {
	n.mu.Lock()

	if len(n.stack) <= 1 {
		n.mu.Unlock()
		return false
	}

	removed := n.popTo(len(n.stack) - 1)
	top := n.stack[len(n.stack)-1]
	listeners := n.listeners()

	n.mu.Unlock()

	n.publish(top, removed, listeners)

	return true
}

func (n *Navigator) publish(current Entry, removed []Entry, listeners []RemovedListener) {
	for _, entry := range removed {
		log.Debug().Str("screen", string(entry.Screen)).Str("entry", entry.ID).Msg("entry removed from back stack")
		for _, listener := range listeners {
			listener(entry)
		}
	}

	n.current.Set(current)
}

// popTo truncates the stack to length keep and returns the removed entries top first
func (n *Navigator) popTo(keep int) []Entry {
	removed := make([]Entry, 0, len(n.stack)-keep)
	for i := len(n.stack) - 1; i >= keep; i-- {
		removed = append(removed, n.stack[i])
	}
	n.stack = n.stack[:keep:keep]
	return removed
}

func (n *Navigator) lastIndexOf(screen common.Screen) int {
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i].Screen == screen {
			return i
		}
	}
	return -1
}

func (n *Navigator) listeners() []RemovedListener {
	listeners := make([]RemovedListener, len(n.removedListeners))
	copy(listeners, n.removedListeners)
	return listeners
}

// OnRemoved registers a listener that is called for every entry that leaves the back stack
func (n *Navigator) OnRemoved(listener RemovedListener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removedListeners = append(n.removedListeners, listener)
}

func (n *Navigator) Current() Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// CurrentEntry republishes the top entry after every change of the back stack
func (n *Navigator) CurrentEntry() observable.Reader[Entry] {
	return n.current
}

func (n *Navigator) Entries() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()

	entries := make([]Entry, len(n.stack))
	copy(entries, n.stack)
	return entries
}

// History returns the screens on the back stack, bottom first
func (n *Navigator) History() []common.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()

	history := make([]common.Screen, len(n.stack))
	for i, entry := range n.stack {
		history[i] = entry.Screen
	}
	return history
}
