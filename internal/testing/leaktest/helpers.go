// Package leaktest holds goroutine-leak assertions shared by tests that start pools and workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultTimeout bounds how long Check waits for goroutines to exit
	DefaultTimeout = time.Second
)

// GoroutineChecker records a goroutine baseline and later compares against it
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		t:       t,
		before:  runtime.NumGoroutine(),
		timeout: DefaultTimeout,
	}
}

// Check fails the test if more than tolerance goroutines outlive the baseline.
// It polls until the count settles or the timeout passes, so exiting workers are not reported.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := waitFor(g.before+tolerance, g.timeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to be gone afterwards
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines remain
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current := waitFor(target, timeout); current > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func waitFor(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
