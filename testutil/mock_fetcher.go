// Package testutil provides common test utilities and mock implementations
package testutil

import (
	"context"
	"robocompany/common"
	"robocompany/errdefs"
	"sync"
)

// MockFetcher is a configurable stand-in for the robots client
type MockFetcher struct {
	mu    sync.Mutex
	calls int

	// Configurable responses
	Robots []common.Robot
	Err    error

	// when set, FetchRobots blocks until the channel is closed or the context is done
	Gate chan struct{}

	// Started receives one value per call once the call is in progress
	Started chan struct{}
}

// NewMockFetcher creates a fetcher that resolves with the given robots
func NewMockFetcher(robots []common.Robot) *MockFetcher {
	return &MockFetcher{Robots: robots, Started: make(chan struct{}, 16)}
}

// NewFailingFetcher creates a fetcher that rejects with err wrapped as a fetch error
func NewFailingFetcher(err error) *MockFetcher {
	return &MockFetcher{Err: errdefs.FetchFailed(err), Started: make(chan struct{}, 16)}
}

// NewBlockingFetcher creates a fetcher that only resolves once Release is called
func NewBlockingFetcher(robots []common.Robot) *MockFetcher {
	fetcher := NewMockFetcher(robots)
	fetcher.Gate = make(chan struct{})
	return fetcher
}

func (m *MockFetcher) FetchRobots(ctx context.Context) ([]common.Robot, error) {
	m.mu.Lock()
	m.calls++
	gate := m.Gate
	m.mu.Unlock()

	if m.Started != nil {
		select {
		case m.Started <- struct{}{}:
		default:
		}
	}

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, errdefs.FetchFailed(ctx.Err())
		}
	}

	if m.Err != nil {
		return nil, m.Err
	}

	return m.Robots, nil
}

// Release unblocks pending and future calls of a blocking fetcher
func (m *MockFetcher) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Gate != nil {
		close(m.Gate)
		m.Gate = nil
	}
}

// Calls returns how often FetchRobots was invoked
func (m *MockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
