package observable

import "sync"

// Reader is the read-only side of a Value
type Reader[T any] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// Value holds a single value and notifies its subscribers each time the value
// is replaced. Subscribers are called in subscription order, outside of the
// value lock, one Set at a time. A subscriber must not call Set on the Value
// that is notifying it.
type Value[T any] struct {
	mu            sync.Mutex
	notifyLock    sync.Mutex
	value         T
	version       uint64
	nextID        uint64
	subscriptions []subscription[T]
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Version counts how often the value has been replaced
func (v *Value[T]) Version() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.version
}

func (v *Value[T]) Set(value T) {
	v.notifyLock.Lock()
	defer v.notifyLock.Unlock()

	v.mu.Lock()
	v.value = value
	v.version++
	subscriptions := make([]subscription[T], len(v.subscriptions))
	copy(subscriptions, v.subscriptions)
	v.mu.Unlock()

	for _, sub := range subscriptions {
		sub.fn(value)
	}
}

// Subscribe registers fn for future changes, it is not called with the current value.
// The returned function removes the subscription and may be called more than once.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subscriptions = append(v.subscriptions, subscription[T]{id: id, fn: fn})
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()

		for i, sub := range v.subscriptions {
			if sub.id == id {
				v.subscriptions = append(v.subscriptions[:i:i], v.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount returns the number of active subscriptions
func (v *Value[T]) SubscriberCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subscriptions)
}
