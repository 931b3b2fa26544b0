package usecase

import (
	"sync"
	"time"
)

// DelayedTask is a one-shot timer that can be cancelled before it fires.
type DelayedTask struct {
	timer    *time.Timer
	fired    chan struct{}
	canceled chan struct{}
	once     sync.Once
}

// Schedule runs fn (which may be nil) after delay unless the task is cancelled first.
func Schedule(delay time.Duration, fn func()) *DelayedTask {
	t := &DelayedTask{fired: make(chan struct{}), canceled: make(chan struct{})}
	t.timer = time.AfterFunc(delay, func() {
		if fn != nil {
			fn()
		}
		close(t.fired)
	})
	return t
}

// Cancel stops the task. It reports false when the task already fired or was cancelled.
func (t *DelayedTask) Cancel() bool {
	if t == nil || !t.timer.Stop() {
		return false
	}
	t.once.Do(func() { close(t.canceled) })
	return true
}

// Wait blocks until the task fires (true) or is cancelled (false).
func (t *DelayedTask) Wait() bool {
	select {
	case <-t.fired:
		return true
	case <-t.canceled:
		return false
	}
}
