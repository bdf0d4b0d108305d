package atomicops

import (
	"math"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/momentics/hioload-sync/critsec"
)

// ops abstracts a strategy so each test runs against both.
type ops interface {
	get(p *int64) int64
	swap(p *int64, v int64) int64
	add(p *int64, delta int64) int64
}

func strategies() map[string]ops {
	return map[string]ops{
		"native": nativeStrategy{},
		"locked": lockedStrategy{},
	}
}

func TestSetReturnsPrevious(t *testing.T) {
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			var v int64 = 7
			if prev := s.swap(&v, 42); prev != 7 {
				t.Fatalf("swap returned %d, want 7", prev)
			}
			if got := s.get(&v); got != 42 {
				t.Fatalf("get = %d after swap, want 42", got)
			}
			if prev := s.swap(&v, -1); prev != 42 {
				t.Fatalf("swap returned %d, want 42", prev)
			}
		})
	}
}

func TestIncrementDecrementReturnNewValue(t *testing.T) {
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			var v int64
			if got := s.add(&v, 1); got != 1 {
				t.Fatalf("increment returned %d, want 1", got)
			}
			if got := s.add(&v, 1); got != 2 {
				t.Fatalf("increment returned %d, want 2", got)
			}
			if got := s.add(&v, -1); got != 1 {
				t.Fatalf("decrement returned %d, want 1", got)
			}
			if got := s.add(&v, -1); got != 0 {
				t.Fatalf("decrement returned %d, want 0", got)
			}
			if got := s.add(&v, -1); got != -1 {
				t.Fatalf("decrement returned %d, want -1", got)
			}
		})
	}
}

func TestWrapAround(t *testing.T) {
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			v := int64(math.MaxInt64)
			if got := s.add(&v, 1); got != math.MinInt64 {
				t.Fatalf("MaxInt64+1 = %d, want MinInt64", got)
			}
			if got := s.add(&v, -1); got != math.MaxInt64 {
				t.Fatalf("MinInt64-1 = %d, want MaxInt64", got)
			}
		})
	}
}

func TestConcurrentIncrements(t *testing.T) {
	const (
		workers = 10
		iters   = 10000
	)
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			var counter int64
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < iters; i++ {
						s.add(&counter, 1)
					}
				}()
			}

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(60 * time.Second):
				t.Fatal("timeout waiting for incrementers")
			}

			if got := s.get(&counter); got != workers*iters {
				t.Fatalf("counter = %d, want %d", got, workers*iters)
			}
		})
	}
}

func TestConcurrentMixedOpsBalance(t *testing.T) {
	const (
		workers = 8
		iters   = 5000
	)
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			var counter int64 = 100
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					for i := 0; i < iters; i++ {
						s.add(&counter, 1)
					}
				}()
				go func() {
					defer wg.Done()
					for i := 0; i < iters; i++ {
						s.add(&counter, -1)
					}
				}()
			}
			wg.Wait()
			if got := s.get(&counter); got != 100 {
				t.Fatalf("counter = %d, want 100", got)
			}
		})
	}
}

// Each returned value of an increment must be unique: no two callers may
// observe the same step.
func TestIncrementResultsAreDistinct(t *testing.T) {
	const (
		workers = 8
		iters   = 2000
	)
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			var counter int64
			results := make([][]int64, workers)
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					out := make([]int64, 0, iters)
					for i := 0; i < iters; i++ {
						out = append(out, s.add(&counter, 1))
						if i%64 == 0 {
							runtime.Gosched()
						}
					}
					results[w] = out
				}(w)
			}
			wg.Wait()

			seen := make(map[int64]bool, workers*iters)
			for _, out := range results {
				for _, v := range out {
					if v < 1 || v > workers*iters {
						t.Fatalf("increment returned out-of-range %d", v)
					}
					if seen[v] {
						t.Fatalf("value %d returned twice", v)
					}
					seen[v] = true
				}
			}
		})
	}
}

func TestPackageFunctions(t *testing.T) {
	var v int64
	if prev := Set(&v, 5); prev != 0 {
		t.Fatalf("Set returned %d, want 0", prev)
	}
	if got := Get(&v); got != 5 {
		t.Fatalf("Get = %d, want 5", got)
	}
	if got := Increment(&v); got != 6 {
		t.Fatalf("Increment = %d, want 6", got)
	}
	if got := Decrement(&v); got != 5 {
		t.Fatalf("Decrement = %d, want 5", got)
	}
}

// Ten goroutines, ten thousand increments each, through the build's strategy.
func TestPackageConcurrentIncrement(t *testing.T) {
	var counter int64
	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				Increment(&counter)
			}
		}()
	}
	wg.Wait()
	if got := Get(&counter); got != 100000 {
		t.Fatalf("Get = %d, want 100000", got)
	}
}

func TestSharedLockCreatedOnce(t *testing.T) {
	const n = 16
	got := make([]*critsec.Lock, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i] = sharedLock()
		}(i)
	}
	close(start)
	wg.Wait()
	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatal("sharedLock returned different instances")
		}
	}
	if got[0] == nil {
		t.Fatal("sharedLock returned nil")
	}
}

func TestLockedStrategyLeavesSharedLockFree(t *testing.T) {
	var v int64
	s := lockedStrategy{}
	s.add(&v, 1)
	s.swap(&v, 3)
	s.get(&v)
	if sharedLock().Held() {
		t.Fatal("shared lock still held after operations")
	}
}

// Counter operations from inside the shared lock must not deadlock: the
// fallback lock is recursive.
func TestLockedStrategyReentrant(t *testing.T) {
	var v int64
	s := lockedStrategy{}
	l := sharedLock()
	l.Acquire()
	defer l.Release()
	if got := s.add(&v, 1); got != 1 {
		t.Fatalf("add under shared lock = %d, want 1", got)
	}
}

func TestHardwareFeaturesKeys(t *testing.T) {
	f := HardwareFeatures()
	for _, k := range []string{"x86.cx16", "arm64.lse"} {
		if _, ok := f[k]; !ok {
			t.Errorf("missing feature key %q", k)
		}
	}
}

func BenchmarkIncrement(b *testing.B) {
	for name, s := range strategies() {
		b.Run(name, func(b *testing.B) {
			var v int64
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					s.add(&v, 1)
				}
			})
		})
	}
}
