package payment

import (
	"context"
	"sync"
)

// LocalLocker is an in-process CardLocker for single instance deployments
// and tests. One channel per card id is kept for the process lifetime.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[uint]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[uint]chan struct{})}
}

// Lock waits for the card's slot. The lease ends with ctx or on unlock.
func (l *LocalLocker) Lock(ctx context.Context, cardID uint) (context.Context, func(), error) {
	l.mu.Lock()
	ch, ok := l.locks[cardID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[cardID] = ch
	}
	l.mu.Unlock()

	select {
	case ch <- struct{}{}:
		lease, cancel := context.WithCancel(ctx)
		var once sync.Once
		return lease, func() {
			once.Do(func() {
				cancel()
				<-ch
			})
		}, nil
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
}
