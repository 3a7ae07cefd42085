package dependencies

import (
	"sync"
)

// lazy initializes the value on the first use, an initialization error is cached too.
type lazy[T any] struct {
	lock        sync.Mutex
	initialized bool
	value       T
	err         error
}

func (l *lazy[T]) InitAndGet(fn func() (T, error)) (T, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if !l.initialized {
		l.value, l.err = fn()
		l.initialized = true
	}
	return l.value, l.err
}

func (l *lazy[T]) MustInitAndGet(fn func() T) T {
	v, _ := l.InitAndGet(func() (T, error) {
		return fn(), nil
	})
	return v
}

// Get returns the value only if it has been successfully initialized.
func (l *lazy[T]) Get() (T, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.value, l.initialized && l.err == nil
}
