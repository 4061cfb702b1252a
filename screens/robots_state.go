package screens

import (
	"context"
	"robocompany/common"
	"robocompany/observable"
	"robocompany/robotapi"
	"robocompany/safe"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

type LoadStatus string

const (
	LOADING LoadStatus = "LOADING"
	LOADED  LoadStatus = "LOADED"
	FAILED  LoadStatus = "FAILED"
)

// RobotsState owns the robots fetch of one Robots screen entry and the
// observable result of it.
type RobotsState struct {
	robots    *observable.Value[[]common.Robot]
	status    *observable.Value[LoadStatus]
	Selection *Selection

	fetcher robotapi.Fetcher
	cancel  context.CancelFunc
	done    chan struct{}
	fetches atomic.Int32
	closed  atomic.Bool

	closeOnce sync.Once
	errLock   sync.Mutex
	err       error
}

// NewRobotsState starts the single fetch of the returned state right away and
// does not wait for it. Use Wait or Done to await the result and Close to
// abandon it.
func NewRobotsState(ctx context.Context, fetcher robotapi.Fetcher) *RobotsState {
	ctx, cancel := context.WithCancel(ctx)

	rs := &RobotsState{
		robots:    observable.NewValue([]common.Robot{}),
		status:    observable.NewValue(LOADING),
		Selection: NewSelection(),
		fetcher:   fetcher,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	safe.Go(func() {
		rs.load(ctx)
	})

	return rs
}

func (rs *RobotsState) load(ctx context.Context) {
	defer close(rs.done)
	defer rs.cancel()

	rs.fetches.Add(1)
	robots, err := rs.fetcher.FetchRobots(ctx)

	// a closed state never publishes again
	if rs.closed.Load() {
		log.Debug().Msg("robots state closed before the fetch finished, dropping result")
		return
	}

	if err != nil {
		rs.errLock.Lock()
		rs.err = err
		rs.errLock.Unlock()

		log.Error().Stack().Err(err).Msg("failed to fetch robots")
		rs.status.Set(FAILED)
		return
	}

	rs.robots.Set(robots)
	rs.status.Set(LOADED)
}

// Robots starts out as an empty list and is replaced once with the fetched robots
func (rs *RobotsState) Robots() observable.Reader[[]common.Robot] {
	return rs.robots
}

func (rs *RobotsState) Status() observable.Reader[LoadStatus] {
	return rs.status
}

// Err returns the fetch error once the status is FAILED
func (rs *RobotsState) Err() error {
	rs.errLock.Lock()
	defer rs.errLock.Unlock()
	return rs.err
}

// FetchCount is the number of fetches this state issued, never more than one
func (rs *RobotsState) FetchCount() int {
	return int(rs.fetches.Load())
}

func (rs *RobotsState) Done() <-chan struct{} {
	return rs.done
}

// Wait blocks until the fetch finished and returns its error. If ctx ends
// first the context error is returned and the fetch keeps going.
func (rs *RobotsState) Wait(ctx context.Context) error {
	select {
	case <-rs.done:
		return rs.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels an in-flight fetch and waits for it to return. Once Close
// returned the observables do not change anymore.
func (rs *RobotsState) Close() {
	rs.closeOnce.Do(func() {
		rs.closed.Store(true)
		rs.cancel()
		<-rs.done
	})
}

func (rs *RobotsState) Closed() bool {
	return rs.closed.Load()
}
