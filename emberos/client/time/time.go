// Package time provides the request/reply client for the tick timer service.
package time

import (
	"errors"
	"fmt"

	"ember/emberos/kernel"
	"ember/emberos/proto"
)

type Client struct {
	timeCap kernel.Capability

	replyCap     kernel.Capability
	replyCapXfer kernel.Capability
	replyCh      <-chan kernel.Message

	nextRequestID uint32
}

func New(timeCap kernel.Capability) *Client {
	return &Client{timeCap: timeCap, nextRequestID: 1}
}

func (c *Client) ensureReply(ctx *kernel.Context) error {
	if c.replyCh != nil {
		return nil
	}

	ep := ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	if !ep.Valid() {
		return errors.New("time client: failed to allocate reply endpoint")
	}

	ch, ok := ctx.RecvChan(ep.Restrict(kernel.RightRecv))
	if !ok {
		return errors.New("time client: failed to receive from reply endpoint")
	}

	c.replyCap = ep
	c.replyCapXfer = ep.Restrict(kernel.RightSend)
	c.replyCh = ch
	return nil
}

func (c *Client) nextID() uint32 {
	id := c.nextRequestID
	c.nextRequestID++
	if c.nextRequestID == 0 {
		c.nextRequestID = 1
	}
	return id
}

// Sleep blocks the calling task until the timer service wakes it, dt ticks
// from now. dt of zero wakes on the next service pass.
func (c *Client) Sleep(ctx *kernel.Context, dt uint32) error {
	if err := c.ensureReply(ctx); err != nil {
		return err
	}

	reqID := c.nextID()
	for {
		res := ctx.SendToCapResult(c.timeCap, uint16(proto.MsgTimeSleep), proto.TimeSleepPayload(reqID, dt), c.replyCapXfer)
		if res == kernel.SendOK {
			break
		}
		if res == kernel.SendErrQueueFull {
			ctx.BlockOnTick()
			continue
		}
		return fmt.Errorf("time client send %s: %s", proto.MsgTimeSleep, res)
	}

	for {
		msg := <-c.replyCh
		switch proto.Kind(msg.Kind) {
		case proto.MsgError:
			code, ref, detail, ok := proto.DecodeErrorPayload(msg.Payload())
			if !ok || ref != proto.MsgTimeSleep {
				return fmt.Errorf("time sleep: %s", code)
			}
			gotID, rest, ok := proto.DecodeErrorDetailWithRequestID(detail)
			if !ok {
				return fmt.Errorf("time sleep: %s", code)
			}
			if gotID != reqID {
				continue
			}
			return fmt.Errorf("time sleep: %s: %s", code, string(rest))
		case proto.MsgTimeWake:
			gotID, ok := proto.DecodeTimeWakePayload(msg.Payload())
			if !ok || gotID != reqID {
				continue
			}
			return nil
		}
	}
}
