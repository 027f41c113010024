package parallel

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAnySucceedsEmpty(t *testing.T) {
	if AnySucceeds(nil) {
		t.Fatal("no trials should mean no success")
	}
}

func TestAnySucceedsSingle(t *testing.T) {
	if !AnySucceeds([]func() bool{func() bool { return true }}) {
		t.Fatal("single succeeding trial not reported")
	}
	if AnySucceeds([]func() bool{func() bool { return false }}) {
		t.Fatal("single failing trial reported as success")
	}
}

func TestAnySucceedsFindsTheOneSuccess(t *testing.T) {
	trials := make([]func() bool, 20)
	for i := range trials {
		i := i
		trials[i] = func() bool { return i == 13 }
	}
	if !AnySucceeds(trials) {
		t.Fatal("success among failures not found")
	}
}

func TestAnySucceedsShortCircuits(t *testing.T) {
	var slowDone atomic.Bool
	trials := []func() bool{
		func() bool { return true },
		func() bool {
			time.Sleep(200 * time.Millisecond)
			slowDone.Store(true)
			return false
		},
	}
	start := time.Now()
	if !AnySucceeds(trials) {
		t.Fatal("expected success")
	}
	if time.Since(start) >= 200*time.Millisecond && !slowDone.Load() {
		t.Fatal("AnySucceeds waited for the slow trial")
	}
}

func TestAllFail(t *testing.T) {
	failures := []func() bool{
		func() bool { return false },
		func() bool { return false },
		func() bool { return false },
	}
	if !AllFail(failures) {
		t.Fatal("all-failing trials not reported")
	}
	failures = append(failures, func() bool { return true })
	if AllFail(failures) {
		t.Fatal("a success slipped through AllFail")
	}
}
