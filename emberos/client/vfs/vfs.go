// Package vfs provides the request/reply client for the filesystem service.
package vfs

import (
	"errors"
	"fmt"

	"ember/emberos/kernel"
	"ember/emberos/proto"
)

// Entry describes a directory entry.
type Entry struct {
	Name string
	Type proto.VFSEntryType
	Size uint32
}

type Client struct {
	vfsCap kernel.Capability

	replyCap     kernel.Capability
	replyCapXfer kernel.Capability
	replyCh      <-chan kernel.Message

	nextRequestID uint32

	// found holds the remaining matches of the active find stream.
	found []Entry
}

func New(vfsCap kernel.Capability) *Client {
	return &Client{vfsCap: vfsCap, nextRequestID: 1}
}

func (c *Client) ensureReply(ctx *kernel.Context) error {
	if c.replyCh != nil {
		return nil
	}

	ep := ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	if !ep.Valid() {
		return errors.New("vfs client: failed to allocate reply endpoint")
	}

	ch, ok := ctx.RecvChan(ep.Restrict(kernel.RightRecv))
	if !ok {
		return errors.New("vfs client: failed to receive from reply endpoint")
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

func (c *Client) send(ctx *kernel.Context, kind proto.Kind, payload []byte) error {
	for {
		res := ctx.SendToCapResult(c.vfsCap, uint16(kind), payload, c.replyCapXfer)
		switch res {
		case kernel.SendOK:
			return nil
		case kernel.SendErrQueueFull:
			ctx.BlockOnTick()
		default:
			return fmt.Errorf("vfs client send %s: %s", kind, res)
		}
	}
}

// decodeErr extracts a service error for the given request, or reports that
// the message belongs to another exchange.
func decodeErr(msg kernel.Message, op string, ref proto.Kind, reqID uint32) (error, bool) {
	code, gotRef, detail, ok := proto.DecodeErrorPayload(msg.Payload())
	if !ok || gotRef != ref {
		return fmt.Errorf("vfs %s: %s", op, code), true
	}
	gotID, rest, ok := proto.DecodeErrorDetailWithRequestID(detail)
	if !ok {
		return fmt.Errorf("vfs %s: %s", op, code), true
	}
	if gotID != reqID {
		return nil, false
	}
	return fmt.Errorf("vfs %s: %s: %s", op, code, string(rest)), true
}

// List returns the entries of a directory.
func (c *Client) List(ctx *kernel.Context, path string) ([]Entry, error) {
	if err := c.ensureReply(ctx); err != nil {
		return nil, err
	}

	reqID := c.nextID()
	if err := c.send(ctx, proto.MsgVFSList, proto.VFSListPayload(reqID, path)); err != nil {
		return nil, err
	}

	var out []Entry
	for {
		msg := <-c.replyCh
		switch proto.Kind(msg.Kind) {
		case proto.MsgError:
			if err, mine := decodeErr(msg, "list", proto.MsgVFSList, reqID); mine {
				return nil, err
			}
		case proto.MsgVFSListResp:
			gotID, done, typ, size, name, ok := proto.DecodeVFSListRespPayload(msg.Payload())
			if !ok || gotID != reqID {
				continue
			}
			if done {
				return out, nil
			}
			out = append(out, Entry{Name: name, Type: typ, Size: size})
		}
	}
}

// Stat returns information about a path.
func (c *Client) Stat(ctx *kernel.Context, path string) (Entry, error) {
	if err := c.ensureReply(ctx); err != nil {
		return Entry{}, err
	}

	reqID := c.nextID()
	if err := c.send(ctx, proto.MsgVFSStat, proto.VFSStatPayload(reqID, path)); err != nil {
		return Entry{}, err
	}

	for {
		msg := <-c.replyCh
		switch proto.Kind(msg.Kind) {
		case proto.MsgError:
			if err, mine := decodeErr(msg, "stat", proto.MsgVFSStat, reqID); mine {
				return Entry{}, err
			}
		case proto.MsgVFSStatResp:
			gotID, typ, size, ok := proto.DecodeVFSStatRespPayload(msg.Payload())
			if !ok || gotID != reqID {
				continue
			}
			return Entry{Type: typ, Size: size}, nil
		}
	}
}

// ReadAt reads up to maxBytes of a file starting at off.
func (c *Client) ReadAt(ctx *kernel.Context, path string, off uint32, maxBytes uint16) (data []byte, eof bool, err error) {
	if err := c.ensureReply(ctx); err != nil {
		return nil, false, err
	}

	reqID := c.nextID()
	if err := c.send(ctx, proto.MsgVFSRead, proto.VFSReadPayload(reqID, path, off, maxBytes)); err != nil {
		return nil, false, err
	}

	for {
		msg := <-c.replyCh
		switch proto.Kind(msg.Kind) {
		case proto.MsgError:
			if err, mine := decodeErr(msg, "read", proto.MsgVFSRead, reqID); mine {
				return nil, false, err
			}
		case proto.MsgVFSReadResp:
			gotID, _, eof, data, ok := proto.DecodeVFSReadRespPayload(msg.Payload())
			if !ok || gotID != reqID {
				continue
			}
			out := make([]byte, len(data))
			copy(out, data)
			return out, eof, nil
		}
	}
}

func (c *Client) ack(ctx *kernel.Context, op string, req, resp proto.Kind, payload []byte, reqID uint32) error {
	if err := c.send(ctx, req, payload); err != nil {
		return err
	}

	for {
		msg := <-c.replyCh
		switch proto.Kind(msg.Kind) {
		case proto.MsgError:
			if err, mine := decodeErr(msg, op, req, reqID); mine {
				return err
			}
		case resp:
			gotID, ok := proto.DecodeVFSAckPayload(msg.Payload())
			if !ok || gotID != reqID {
				continue
			}
			return nil
		}
	}
}

// Mkdir creates a directory.
func (c *Client) Mkdir(ctx *kernel.Context, path string) error {
	if err := c.ensureReply(ctx); err != nil {
		return err
	}
	reqID := c.nextID()
	return c.ack(ctx, "mkdir", proto.MsgVFSMkdir, proto.MsgVFSMkdirResp, proto.VFSMkdirPayload(reqID, path), reqID)
}

// Remove deletes a file or empty directory.
func (c *Client) Remove(ctx *kernel.Context, path string) error {
	if err := c.ensureReply(ctx); err != nil {
		return err
	}
	reqID := c.nextID()
	return c.ack(ctx, "remove", proto.MsgVFSRemove, proto.MsgVFSRemoveResp, proto.VFSRemovePayload(reqID, path), reqID)
}

// Rename moves a file or directory.
func (c *Client) Rename(ctx *kernel.Context, oldPath, newPath string) error {
	if err := c.ensureReply(ctx); err != nil {
		return err
	}
	reqID := c.nextID()
	return c.ack(ctx, "rename", proto.MsgVFSRename, proto.MsgVFSRenameResp, proto.VFSRenamePayload(reqID, oldPath, newPath), reqID)
}

// Copy duplicates a file.
func (c *Client) Copy(ctx *kernel.Context, srcPath, dstPath string) error {
	if err := c.ensureReply(ctx); err != nil {
		return err
	}
	reqID := c.nextID()
	return c.ack(ctx, "copy", proto.MsgVFSCopy, proto.MsgVFSCopyResp, proto.VFSCopyPayload(reqID, srcPath, dstPath), reqID)
}

// FindFirst starts a glob scan of dir and returns the first match. The full
// match set is drained eagerly so the service never blocks on a stalled
// consumer; FindNext walks the remainder.
func (c *Client) FindFirst(ctx *kernel.Context, dir, pattern string) (Entry, bool) {
	c.found = nil
	if err := c.ensureReply(ctx); err != nil {
		return Entry{}, false
	}

	reqID := c.nextID()
	if err := c.send(ctx, proto.MsgVFSFind, proto.VFSFindPayload(reqID, dir, pattern)); err != nil {
		return Entry{}, false
	}

	for {
		msg := <-c.replyCh
		switch proto.Kind(msg.Kind) {
		case proto.MsgError:
			if _, mine := decodeErr(msg, "find", proto.MsgVFSFind, reqID); mine {
				return Entry{}, false
			}
		case proto.MsgVFSFindResp:
			gotID, done, typ, name, ok := proto.DecodeVFSFindRespPayload(msg.Payload())
			if !ok || gotID != reqID {
				continue
			}
			if done {
				return c.popFound()
			}
			c.found = append(c.found, Entry{Name: name, Type: typ})
		}
	}
}

// FindNext returns the next match of the active find stream.
func (c *Client) FindNext() (Entry, bool) {
	return c.popFound()
}

func (c *Client) popFound() (Entry, bool) {
	if len(c.found) == 0 {
		return Entry{}, false
	}
	e := c.found[0]
	c.found = c.found[1:]
	return e, true
}
