package engine

// Event is a multi-cast observer with one argument. Listeners get an id on
// subscription so they can be removed again; function values can't be
// compared in Go, so ids are the only reliable way to unsubscribe.
type Event[T any] struct {
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers a callback and returns its subscription id.
func (e *Event[T]) Subscribe(fn func(T)) int {
	if fn == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// Unsubscribe removes the listener with the given id. Unknown ids are ignored.
func (e *Event[T]) Unsubscribe(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Invoke calls all registered listeners in subscription order.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
