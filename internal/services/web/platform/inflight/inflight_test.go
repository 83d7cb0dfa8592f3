package inflight

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestTryAcquireRefusesHeldKey(t *testing.T) {
	t.Parallel()

	var guard Guard
	release, ok := guard.TryAcquire(Key("sid", "register"))
	if !ok {
		t.Fatalf("first TryAcquire ok = false")
	}
	if _, ok := guard.TryAcquire(Key("sid", "register")); ok {
		t.Fatalf("second TryAcquire ok = true, want false")
	}
	if _, ok := guard.TryAcquire(Key("other", "register")); !ok {
		t.Fatalf("other session should not be blocked")
	}
	if !guard.Busy(Key("sid", "register")) {
		t.Fatalf("expected key to be busy")
	}

	release()
	release()
	if guard.Busy(Key("sid", "register")) {
		t.Fatalf("expected key to be released")
	}
	if _, ok := guard.TryAcquire(Key("sid", "register")); !ok {
		t.Fatalf("TryAcquire after release ok = false")
	}
}

func TestTryAcquireAdmitsOneConcurrentCaller(t *testing.T) {
	t.Parallel()

	var guard Guard
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := guard.TryAcquire("k"); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := wins.Load(); got != 1 {
		t.Fatalf("winners = %d, want 1", got)
	}
}
