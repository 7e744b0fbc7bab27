package time

import (
	"testing"
	stdtime "time"

	"ember/emberos/kernel"
	timesvc "ember/emberos/services/time"
)

type taskFunc func(*kernel.Context)

func (f taskFunc) Run(ctx *kernel.Context) { f(ctx) }

// runTicker drives the tick clock until the returned stop func is called.
func runTicker(k *kernel.Kernel) func() {
	stop := make(chan struct{})
	go func() {
		for seq := uint64(1); ; seq++ {
			select {
			case <-stop:
				return
			default:
			}
			k.TickTo(seq)
			stdtime.Sleep(stdtime.Millisecond)
		}
	}()
	return func() { close(stop) }
}

func TestSleepWakesAfterDue(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(timesvc.New(ep))

	const dt = 3
	type result struct {
		err  error
		woke uint64
	}
	done := make(chan result, 1)
	k.AddTask(taskFunc(func(ctx *kernel.Context) {
		c := New(ep.Restrict(kernel.RightSend))
		err := c.Sleep(ctx, dt)
		done <- result{err: err, woke: ctx.NowTick()}
	}))

	stop := runTicker(k)
	defer stop()

	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("sleep: %v", res.err)
		}
		if res.woke < dt {
			t.Fatalf("woke at tick %d, want >= %d", res.woke, dt)
		}
	case <-stdtime.After(2 * stdtime.Second):
		t.Fatal("timed out waiting for wake")
	}
}

func TestSleepZeroReturnsPromptly(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(timesvc.New(ep))

	done := make(chan error, 1)
	k.AddTask(taskFunc(func(ctx *kernel.Context) {
		c := New(ep.Restrict(kernel.RightSend))
		done <- c.Sleep(ctx, 0)
	}))

	stop := runTicker(k)
	defer stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("sleep: %v", err)
		}
	case <-stdtime.After(2 * stdtime.Second):
		t.Fatal("timed out waiting for wake")
	}
}

func TestSleepWithoutCapabilityFails(t *testing.T) {
	k := kernel.New()
	done := make(chan error, 1)
	k.AddTask(taskFunc(func(ctx *kernel.Context) {
		c := New(kernel.Capability{})
		done <- c.Sleep(ctx, 1)
	}))

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error from an invalid capability")
		}
	case <-stdtime.After(2 * stdtime.Second):
		t.Fatal("timed out waiting for error")
	}
}
