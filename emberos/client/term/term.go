// Package term provides the client side of the terminal service: byte
// output plus live cursor and size queries.
package term

import (
	"errors"
	"fmt"

	"ember/emberos/kernel"
	"ember/emberos/proto"
)

// Write sends a best-effort payload to the terminal service.
func Write(ctx *kernel.Context, termCap kernel.Capability, payload []byte) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	if len(payload) > kernel.MaxMessageBytes {
		payload = payload[:kernel.MaxMessageBytes]
	}
	return ctx.SendToCapResult(termCap, uint16(proto.MsgTermWrite), payload, kernel.Capability{})
}

// Clear requests a terminal reset/clear.
func Clear(ctx *kernel.Context, termCap kernel.Capability) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	return ctx.SendToCapResult(termCap, uint16(proto.MsgTermClear), nil, kernel.Capability{})
}

// Client is a stateful terminal client with a private reply endpoint for
// cursor/size queries. Output never drops bytes: writes retry while the
// terminal queue is full.
type Client struct {
	termCap kernel.Capability

	replyCap     kernel.Capability
	replyCapXfer kernel.Capability
	replyCh      <-chan kernel.Message
}

func New(termCap kernel.Capability) *Client {
	return &Client{termCap: termCap}
}

func (c *Client) ensureReply(ctx *kernel.Context) error {
	if c.replyCh != nil {
		return nil
	}

	ep := ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	if !ep.Valid() {
		return errors.New("term client: failed to allocate reply endpoint")
	}

	ch, ok := ctx.RecvChan(ep.Restrict(kernel.RightRecv))
	if !ok {
		return errors.New("term client: failed to receive from reply endpoint")
	}

	c.replyCap = ep
	c.replyCapXfer = ep.Restrict(kernel.RightSend)
	c.replyCh = ch
	return nil
}

// Write sends payload, retrying while the terminal queue is full. Chunks
// larger than one message are split.
func (c *Client) Write(ctx *kernel.Context, payload []byte) error {
	for len(payload) > 0 {
		chunk := payload
		if len(chunk) > kernel.MaxMessageBytes {
			chunk = chunk[:kernel.MaxMessageBytes]
		}
		for {
			res := ctx.SendToCapResult(c.termCap, uint16(proto.MsgTermWrite), chunk, kernel.Capability{})
			if res == kernel.SendOK {
				break
			}
			if res != kernel.SendErrQueueFull {
				return fmt.Errorf("term write: %s", res)
			}
			ctx.BlockOnTick()
		}
		payload = payload[len(chunk):]
	}
	return nil
}

// WriteString sends s, retrying while the terminal queue is full.
func (c *Client) WriteString(ctx *kernel.Context, s string) error {
	return c.Write(ctx, []byte(s))
}

// Put sends a single byte.
func (c *Client) Put(ctx *kernel.Context, b byte) error {
	return c.Write(ctx, []byte{b})
}

// Clear requests a terminal reset/clear.
func (c *Client) Clear(ctx *kernel.Context) error {
	for {
		res := ctx.SendToCapResult(c.termCap, uint16(proto.MsgTermClear), nil, kernel.Capability{})
		if res == kernel.SendOK {
			return nil
		}
		if res != kernel.SendErrQueueFull {
			return fmt.Errorf("term clear: %s", res)
		}
		ctx.BlockOnTick()
	}
}

// Cursor queries the live cursor position from the terminal service.
func (c *Client) Cursor(ctx *kernel.Context) (col, row int, ok bool) {
	if err := c.ensureReply(ctx); err != nil {
		return 0, 0, false
	}
	if !c.query(ctx, proto.MsgTermCursor) {
		return 0, 0, false
	}

	for msg := range c.replyCh {
		if proto.Kind(msg.Kind) != proto.MsgTermCursorResp {
			continue
		}
		col, row, known, ok := proto.DecodeTermCursorRespPayload(msg.Payload())
		if !ok {
			return 0, 0, false
		}
		return col, row, known
	}
	return 0, 0, false
}

// Size queries the terminal dimensions.
func (c *Client) Size(ctx *kernel.Context) (cols, rows int, ok bool) {
	if err := c.ensureReply(ctx); err != nil {
		return 0, 0, false
	}
	if !c.query(ctx, proto.MsgTermSize) {
		return 0, 0, false
	}

	for msg := range c.replyCh {
		if proto.Kind(msg.Kind) != proto.MsgTermSizeResp {
			continue
		}
		cols, rows, ok := proto.DecodeTermSizeRespPayload(msg.Payload())
		if !ok {
			return 0, 0, false
		}
		return cols, rows, true
	}
	return 0, 0, false
}

func (c *Client) query(ctx *kernel.Context, kind proto.Kind) bool {
	for {
		res := ctx.SendToCapResult(c.termCap, uint16(kind), nil, c.replyCapXfer)
		switch res {
		case kernel.SendOK:
			return true
		case kernel.SendErrQueueFull:
			ctx.BlockOnTick()
		default:
			return false
		}
	}
}
