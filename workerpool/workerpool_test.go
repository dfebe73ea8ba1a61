package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmitRunsAndReturnsResult(t *testing.T) {
	p := New(2)
	defer p.Stop()

	fut, err := Submit(p, func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	v, err := fut.Wait()
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if v != 42 {
		t.Errorf("result = %d, want 42", v)
	}
}

func TestSubmitPropagatesError(t *testing.T) {
	p := New(1)
	defer p.Stop()

	want := errors.New("boom")
	fut, err := Submit(p, func() (int, error) { return 0, want })
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	_, gotErr := fut.Wait()
	if !errors.Is(gotErr, want) {
		t.Errorf("err = %v, want %v", gotErr, want)
	}
}

func TestSubmitRecoversPanic(t *testing.T) {
	p := New(1)
	defer p.Stop()

	fut, err := Submit(p, func() (int, error) {
		panic("simulated failure")
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	_, gotErr := fut.Wait()
	if !errors.Is(gotErr, ErrTaskPanicked) {
		t.Errorf("err = %v, want wrapping ErrTaskPanicked", gotErr)
	}
}

func TestPoolRunsTasksConcurrently(t *testing.T) {
	p := New(4)
	defer p.Stop()

	var counter atomic.Int64
	futures := make([]*Future[int], 0, 20)
	for i := 0; i < 20; i++ {
		fut, err := Submit(p, func() (int, error) {
			counter.Add(1)
			return 0, nil
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		futures = append(futures, fut)
	}
	for _, fut := range futures {
		if _, err := fut.Wait(); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if counter.Load() != 20 {
		t.Errorf("completed = %d, want 20", counter.Load())
	}
}

func TestSubmitAfterStopIsRejected(t *testing.T) {
	p := New(1)
	p.Stop()

	_, err := Submit(p, func() (int, error) { return 0, nil })
	if !errors.Is(err, ErrPoolStopped) {
		t.Errorf("err = %v, want ErrPoolStopped", err)
	}
}

func TestStopDrainsQueueBeforeReturning(t *testing.T) {
	p := New(1)

	var ran atomic.Bool
	fut, err := Submit(p, func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		ran.Store(true)
		return 0, nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	p.Stop()
	if _, err := fut.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !ran.Load() {
		t.Error("queued task did not run before Stop returned")
	}
}
