package screens

import (
	"context"
	"robocompany/common"
	"robocompany/config"
	"robocompany/errdefs"
	"robocompany/logging"
	"robocompany/testutil"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.SetupLogger(&config.CommandLineArguments{Debug: true})
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRobotsStateInitialValue(t *testing.T) {
	fetcher := testutil.NewBlockingFetcher(testutil.Robots())
	state := NewRobotsState(context.Background(), fetcher)
	defer state.Close()

	assert.Equal(t, []common.Robot{}, state.Robots().Get())
	assert.Equal(t, LOADING, state.Status().Get())
	assert.NoError(t, state.Err())
}

func TestRobotsStateSuccess(t *testing.T) {
	fetcher := testutil.NewMockFetcher(testutil.Robots())
	state := NewRobotsState(context.Background(), fetcher)
	defer state.Close()

	require.NoError(t, state.Wait(waitCtx(t)))

	assert.Equal(t, testutil.Robots(), state.Robots().Get())
	assert.Equal(t, LOADED, state.Status().Get())
	assert.Equal(t, 1, fetcher.Calls())
	assert.Equal(t, 1, state.FetchCount())
}

func TestRobotsStateNotifiesSubscribers(t *testing.T) {
	fetcher := testutil.NewBlockingFetcher(testutil.Robots())
	state := NewRobotsState(context.Background(), fetcher)
	defer state.Close()

	received := make(chan []common.Robot, 1)
	state.Robots().Subscribe(func(robots []common.Robot) {
		received <- robots
	})

	fetcher.Release()

	select {
	case robots := <-received:
		assert.Equal(t, testutil.Robots(), robots)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber was not notified")
	}
}

func TestRobotsStateNoDuplicateFetch(t *testing.T) {
	fetcher := testutil.NewMockFetcher(testutil.Robots())
	state := NewRobotsState(context.Background(), fetcher)
	defer state.Close()

	require.NoError(t, state.Wait(waitCtx(t)))

	for i := 0; i < 10; i++ {
		_ = state.Robots().Get()
		_ = state.Status().Get()
	}

	assert.Equal(t, 1, fetcher.Calls())
}

func TestRobotsStateFailure(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		fetcher := testutil.NewFailingFetcher(errors.New("connection refused"))
		state := NewRobotsState(context.Background(), fetcher)
		defer state.Close()

		err := state.Wait(waitCtx(t))
		require.Error(t, err)
		assert.True(t, errdefs.IsFetchFailed(err))

		assert.Equal(t, []common.Robot{}, state.Robots().Get())
		assert.Equal(t, FAILED, state.Status().Get())
		assert.Equal(t, err, state.Err())
	})

	t.Run("robots cell is never touched", func(t *testing.T) {
		fetcher := testutil.NewBlockingFetcher(nil)
		fetcher.Err = errdefs.FetchFailed(errdefs.ErrMissingFromPayload)
		state := NewRobotsState(context.Background(), fetcher)
		defer state.Close()

		notified := false
		state.Robots().Subscribe(func([]common.Robot) { notified = true })

		fetcher.Release()
		require.Error(t, state.Wait(waitCtx(t)))

		assert.False(t, notified)
		assert.Empty(t, state.Robots().Get())
	})
}

func TestRobotsStateClose(t *testing.T) {
	t.Run("cancels the in-flight fetch", func(t *testing.T) {
		fetcher := testutil.NewBlockingFetcher(testutil.Robots())
		state := NewRobotsState(context.Background(), fetcher)

		<-fetcher.Started
		state.Close()

		select {
		case <-state.Done():
		default:
			t.Fatal("fetch still running after Close")
		}

		assert.True(t, state.Closed())
		assert.Equal(t, []common.Robot{}, state.Robots().Get())
		assert.Equal(t, LOADING, state.Status().Get())
	})

	t.Run("is idempotent", func(t *testing.T) {
		state := NewRobotsState(context.Background(), testutil.NewMockFetcher(testutil.Robots()))

		assert.NotPanics(t, func() {
			state.Close()
			state.Close()
		})
	})

	t.Run("after a finished fetch keeps the result", func(t *testing.T) {
		state := NewRobotsState(context.Background(), testutil.NewMockFetcher(testutil.Robots()))
		require.NoError(t, state.Wait(waitCtx(t)))

		state.Close()
		assert.Equal(t, testutil.Robots(), state.Robots().Get())
	})
}

func TestRobotsStateParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := testutil.NewBlockingFetcher(testutil.Robots())
	state := NewRobotsState(ctx, fetcher)
	defer state.Close()

	<-fetcher.Started
	cancel()

	err := state.Wait(waitCtx(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, FAILED, state.Status().Get())
}

func TestRobotsStateWaitGivesUp(t *testing.T) {
	fetcher := testutil.NewBlockingFetcher(testutil.Robots())
	state := NewRobotsState(context.Background(), fetcher)
	defer state.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, state.Wait(ctx), context.DeadlineExceeded)
	assert.Equal(t, LOADING, state.Status().Get())
}
