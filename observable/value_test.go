package observable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Run("holds the initial value", func(t *testing.T) {
		value := NewValue([]string{})
		assert.Equal(t, []string{}, value.Get())
		assert.Equal(t, uint64(0), value.Version())
	})

	t.Run("Set replaces and notifies", func(t *testing.T) {
		value := NewValue(0)

		var received []int
		value.Subscribe(func(v int) {
			received = append(received, v)
		})

		value.Set(1)
		value.Set(2)

		assert.Equal(t, 2, value.Get())
		assert.Equal(t, []int{1, 2}, received)
		assert.Equal(t, uint64(2), value.Version())
	})

	t.Run("Subscribe does not replay the current value", func(t *testing.T) {
		value := NewValue("initial")

		calls := 0
		value.Subscribe(func(string) { calls++ })

		assert.Equal(t, 0, calls)
	})

	t.Run("subscribers run in subscription order", func(t *testing.T) {
		value := NewValue(0)

		var order []string
		value.Subscribe(func(int) { order = append(order, "first") })
		value.Subscribe(func(int) { order = append(order, "second") })
		value.Subscribe(func(int) { order = append(order, "third") })

		value.Set(1)
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		value := NewValue(0)

		firstCalls, secondCalls := 0, 0
		unsubscribe := value.Subscribe(func(int) { firstCalls++ })
		value.Subscribe(func(int) { secondCalls++ })

		value.Set(1)
		unsubscribe()
		unsubscribe()
		value.Set(2)

		assert.Equal(t, 1, firstCalls)
		assert.Equal(t, 2, secondCalls)
		assert.Equal(t, 1, value.SubscriberCount())
	})

	t.Run("a subscriber may unsubscribe itself while being notified", func(t *testing.T) {
		value := NewValue(0)

		calls := 0
		var unsubscribe func()
		unsubscribe = value.Subscribe(func(int) {
			calls++
			unsubscribe()
		})

		value.Set(1)
		value.Set(2)
		assert.Equal(t, 1, calls)
	})

	t.Run("a subscriber may read the value", func(t *testing.T) {
		value := NewValue(0)

		var seen int
		value.Subscribe(func(int) { seen = value.Get() })

		value.Set(5)
		assert.Equal(t, 5, seen)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		value := NewValue(0)

		var mu sync.Mutex
		notifications := 0
		value.Subscribe(func(int) {
			mu.Lock()
			notifications++
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				value.Set(i)
				_ = value.Get()
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 50, notifications)
		assert.Equal(t, uint64(50), value.Version())
	})
}

func TestReaderInterface(t *testing.T) {
	var reader Reader[int] = NewValue(3)
	assert.Equal(t, 3, reader.Get())
}
