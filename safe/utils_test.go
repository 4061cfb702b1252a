package safe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGo(t *testing.T) {
	done := make(chan struct{})
	Go(func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "function was not run")
	}
}
