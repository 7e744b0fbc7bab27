package shell

import (
	"fmt"
	"testing"
	"time"

	termclient "ember/emberos/client/term"
	"ember/emberos/kernel"
	"ember/emberos/proto"
)

type taskFunc func(*kernel.Context)

func (f taskFunc) Run(ctx *kernel.Context) { f(ctx) }

// TestConsoleColsRefreshesPerSession drives ipcConsole against a terminal
// stand-in whose width changes between size queries: the cache must hold
// within a session and drop on invalidateSize.
func TestConsoleColsRefreshesPerSession(t *testing.T) {
	k := kernel.New()
	termEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	widths := []int{40, 53}
	k.AddTask(taskFunc(func(ctx *kernel.Context) {
		ch, ok := ctx.RecvChan(termEP.Restrict(kernel.RightRecv))
		if !ok {
			return
		}
		i := 0
		for msg := range ch {
			if proto.Kind(msg.Kind) != proto.MsgTermSize || !msg.Cap.Valid() {
				continue
			}
			w := widths[i]
			if i < len(widths)-1 {
				i++
			}
			ctx.SendTo(msg.Cap, uint16(proto.MsgTermSizeResp), proto.TermSizeRespPayload(w, 24))
		}
	}))

	done := make(chan string, 1)
	k.AddTask(taskFunc(func(ctx *kernel.Context) {
		con := &ipcConsole{ctx: ctx, term: termclient.New(termEP.Restrict(kernel.RightSend))}
		if got := con.Cols(); got != 40 {
			done <- fmt.Sprintf("first query: cols = %d, want 40", got)
			return
		}
		if got := con.Cols(); got != 40 {
			done <- fmt.Sprintf("cached query: cols = %d, want 40", got)
			return
		}
		con.invalidateSize()
		if got := con.Cols(); got != 53 {
			done <- fmt.Sprintf("after invalidate: cols = %d, want 53", got)
			return
		}
		done <- ""
	}))

	select {
	case msg := <-done:
		if msg != "" {
			t.Fatal(msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for size queries")
	}
}
