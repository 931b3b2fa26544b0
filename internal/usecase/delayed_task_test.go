package usecase

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDelayedTaskFires(t *testing.T) {
	var calls atomic.Int32
	task := Schedule(5*time.Millisecond, func() { calls.Add(1) })
	if !task.Wait() {
		t.Fatal("expected the task to fire")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one call, got %d", calls.Load())
	}
	if task.Cancel() {
		t.Fatal("cancel after firing should report false")
	}
}

func TestDelayedTaskCancel(t *testing.T) {
	var calls atomic.Int32
	task := Schedule(time.Hour, func() { calls.Add(1) })
	if !task.Cancel() {
		t.Fatal("expected cancel to stop a pending task")
	}
	if task.Cancel() {
		t.Fatal("second cancel should report false")
	}
	if task.Wait() {
		t.Fatal("cancelled task should not report firing")
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no calls, got %d", calls.Load())
	}

	var nilTask *DelayedTask
	if nilTask.Cancel() {
		t.Fatal("nil task cancel should report false")
	}
}
