//go:build !tinygo

package hal

import "time"

// hostTime converts wall-clock time into the 1ms tick stream the kernel
// clock consumes. Ticks that find the channel full are dropped; the
// sequence number still advances, so consumers never see time stand still.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last  time.Time
	carry time.Duration
}

const hostTickPeriod = time.Millisecond

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step is called once per frame; n seeds the very first frame, after which
// elapsed wall time decides how many ticks to emit.
func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.carry = 0
		t.emit(n)
		return
	}

	t.carry += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.carry / hostTickPeriod)
	if ticks == 0 {
		return
	}
	t.carry %= hostTickPeriod
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
