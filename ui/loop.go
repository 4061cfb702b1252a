package ui

import (
	"bufio"
	"context"
	"io"
	"robocompany/common"
	"robocompany/navigation"
	"robocompany/robotapi"
	"robocompany/safe"
	"robocompany/screens"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Loop drives the screens from line commands. The navigator, the screen
// states and the renderer are only touched from the goroutine running Run,
// background changes reach it through the dirty channel.
type Loop struct {
	nav      *navigation.Navigator
	renderer *Renderer
	in       io.Reader
	fetcher  robotapi.Fetcher

	homes  map[string]*screens.HomeState
	robots map[string]*screens.RobotsState

	dirty         chan struct{}
	unsubscribers []func()
}

func NewLoop(nav *navigation.Navigator, fetcher robotapi.Fetcher, in io.Reader, out io.Writer) *Loop {
	loop := &Loop{
		nav:      nav,
		renderer: NewRenderer(out),
		in:       in,
		fetcher:  fetcher,
		homes:    make(map[string]*screens.HomeState),
		robots:   make(map[string]*screens.RobotsState),
		dirty:    make(chan struct{}, 1),
	}

	nav.OnRemoved(loop.onRemoved)

	return loop
}

// Run returns nil when the input ends, the user quits or ctx is done.
// The input reader is not interrupted, a blocked read outlives Run.
func (l *Loop) Run(ctx context.Context) error {
	defer l.closeAll()

	lines := make(chan string)
	readErr := make(chan error, 1)

	safe.Go(func() {
		scanner := bufio.NewScanner(l.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	})

	l.activate(ctx)
	l.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case <-l.dirty:
			l.render()
		case line := <-lines:
			if l.handle(ctx, line) {
				return nil
			}
			l.render()
		}
	}
}

// handle executes one command and reports whether the app should exit
func (l *Loop) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	command := fields[0]
	switch command {
	case "quit", "exit":
		return true
	case "help":
		l.help()
		return false
	case "back":
		// back on the root entry leaves the app
		if !l.nav.Back() {
			return true
		}
		l.activate(ctx)
		return false
	}

	entry := l.nav.Current()
	switch entry.Screen {
	case common.HOME:
		l.handleHome(ctx, entry, command)
	case common.ROBOTS:
		l.handleRobots(ctx, entry, command, fields[1:])
	}

	return false
}

func (l *Loop) handleHome(ctx context.Context, entry navigation.Entry, command string) {
	switch command {
	case "open", "robots":
		err := l.nav.GoToRobots()
		if err != nil {
			log.Error().Stack().Err(err).Msg("failed to open robots screen")
			return
		}
		l.activate(ctx)
	case "click":
		l.homes[entry.ID].Click()
	default:
		l.renderer.Message("unknown command %q, try help", command)
	}
}

func (l *Loop) handleRobots(ctx context.Context, entry navigation.Entry, command string, args []string) {
	state := l.robots[entry.ID]

	switch command {
	case "members", "home":
		err := l.nav.ResetToHome()
		if err != nil {
			log.Error().Stack().Err(err).Msg("failed to return to home screen")
			return
		}
		l.activate(ctx)
	case "select":
		if len(args) != 1 {
			l.renderer.Message("usage: select <number>")
			return
		}

		number, err := strconv.Atoi(args[0])
		if err != nil || number < 1 || number > len(state.Robots().Get()) {
			l.renderer.Message("no robot number %s", args[0])
			return
		}

		state.Selection.Toggle(number - 1)
	default:
		l.renderer.Message("unknown command %q, try help", command)
	}
}

// activate makes sure the current entry has its state and that changes to it re-render
func (l *Loop) activate(ctx context.Context) {
	for _, unsubscribe := range l.unsubscribers {
		unsubscribe()
	}
	l.unsubscribers = nil

	entry := l.nav.Current()
	switch entry.Screen {
	case common.HOME:
		if _, ok := l.homes[entry.ID]; !ok {
			l.homes[entry.ID] = screens.NewHomeState()
		}
	case common.ROBOTS:
		state, ok := l.robots[entry.ID]
		if !ok {
			log.Debug().Str("entry", entry.ID).Msg("entering robots screen, starting fetch")
			state = screens.NewRobotsState(ctx, l.fetcher)
			l.robots[entry.ID] = state
		}

		l.unsubscribers = append(l.unsubscribers,
			state.Robots().Subscribe(func([]common.Robot) { l.markDirty() }),
			state.Status().Subscribe(func(screens.LoadStatus) { l.markDirty() }),
		)
	}
}

func (l *Loop) onRemoved(entry navigation.Entry) {
	delete(l.homes, entry.ID)

	state, ok := l.robots[entry.ID]
	if !ok {
		return
	}

	delete(l.robots, entry.ID)
	state.Close()
}

// markDirty never blocks, pending renders collapse into one
func (l *Loop) markDirty() {
	select {
	case l.dirty <- struct{}{}:
	default:
	}
}

func (l *Loop) render() {
	entry := l.nav.Current()

	switch entry.Screen {
	case common.HOME:
		l.renderer.RenderHome(l.homes[entry.ID])
	case common.ROBOTS:
		l.renderer.RenderRobots(l.robots[entry.ID])
	}

	l.renderer.Prompt(entry.Screen)
}

func (l *Loop) help() {
	switch l.nav.Current().Screen {
	case common.HOME:
		l.renderer.Message("open     show the robots of %s", common.CompanyName)
		l.renderer.Message("click    press the counter button")
	case common.ROBOTS:
		l.renderer.Message("members  return to the home screen")
		l.renderer.Message("select N toggle the highlight of robot N")
	}
	l.renderer.Message("back     go back, leaves the app on the home screen")
	l.renderer.Message("quit     leave the app")
}

func (l *Loop) closeAll() {
	for _, unsubscribe := range l.unsubscribers {
		unsubscribe()
	}
	l.unsubscribers = nil

	for id, state := range l.robots {
		state.Close()
		delete(l.robots, id)
	}
}
