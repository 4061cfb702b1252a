package errdefs

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFetchFailed(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FetchFailed(nil))
	})

	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := errors.Wrap(context.Canceled, "failed to request robots")
		err := FetchFailed(cause)

		assert.True(t, IsFetchFailed(err))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, context.Canceled, errors.Cause(err))
	})

	t.Run("does not double wrap", func(t *testing.T) {
		err := FetchFailed(errors.New("boom"))
		assert.Equal(t, err, FetchFailed(err))
	})

	t.Run("detected through further wrapping", func(t *testing.T) {
		err := errors.Wrap(FetchFailed(errors.New("boom")), "robots screen")
		assert.True(t, IsFetchFailed(err))
	})

	t.Run("plain errors are not fetch errors", func(t *testing.T) {
		assert.False(t, IsFetchFailed(ErrUnknownRoute))
		assert.False(t, IsFetchFailed(nil))
	})
}
