// Package vfs serves filesystem requests over IPC, backed by ramfs.
package vfs

import (
	"errors"
	"fmt"

	"ember/emberos/fs/ramfs"
	"ember/emberos/kernel"
	"ember/emberos/proto"
)

type Service struct {
	inCap kernel.Capability
	fs    *ramfs.FS
}

func New(fs *ramfs.FS, inCap kernel.Capability) *Service {
	return &Service{fs: fs, inCap: inCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.inCap)
	if !ok {
		return
	}

	for msg := range ch {
		switch proto.Kind(msg.Kind) {
		case proto.MsgVFSList:
			s.handleList(ctx, msg)
		case proto.MsgVFSStat:
			s.handleStat(ctx, msg)
		case proto.MsgVFSRead:
			s.handleRead(ctx, msg)
		case proto.MsgVFSMkdir:
			s.handleMkdir(ctx, msg)
		case proto.MsgVFSRemove:
			s.handleRemove(ctx, msg)
		case proto.MsgVFSRename:
			s.handleRename(ctx, msg)
		case proto.MsgVFSCopy:
			s.handleCopy(ctx, msg)
		case proto.MsgVFSFind:
			s.handleFind(ctx, msg)
		}
	}
}

func (s *Service) handleList(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, path, ok := proto.DecodeVFSListPayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSList, 0, "decode list")
		return
	}

	if err := s.fs.ListDir(path, func(name string, info ramfs.Info) bool {
		payload := proto.VFSListRespPayload(requestID, false, entryType(info.Type), info.Size, name)
		_ = s.send(ctx, reply, proto.MsgVFSListResp, payload)
		return true
	}); err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSList, requestID, err.Error())
		return
	}

	_ = s.send(ctx, reply, proto.MsgVFSListResp, proto.VFSListRespPayload(requestID, true, proto.VFSEntryUnknown, 0, ""))
}

func (s *Service) handleStat(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, path, ok := proto.DecodeVFSStatPayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSStat, 0, "decode stat")
		return
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSStat, requestID, err.Error())
		return
	}
	_ = s.send(ctx, reply, proto.MsgVFSStatResp, proto.VFSStatRespPayload(requestID, entryType(info.Type), info.Size))
}

func (s *Service) handleRead(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, path, off, maxBytes, ok := proto.DecodeVFSReadPayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSRead, 0, "decode read")
		return
	}

	max := int(maxBytes)
	maxPayload := kernel.MaxMessageBytes - 11
	if max > maxPayload {
		max = maxPayload
	}
	buf := make([]byte, max)

	n, eof, err := s.fs.ReadAt(path, buf, off)
	if err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSRead, requestID, err.Error())
		return
	}
	_ = s.send(ctx, reply, proto.MsgVFSReadResp, proto.VFSReadRespPayload(requestID, off, eof, buf[:n]))
}

func (s *Service) handleMkdir(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, path, ok := proto.DecodeVFSMkdirPayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSMkdir, 0, "decode mkdir")
		return
	}

	if err := s.fs.Mkdir(path); err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSMkdir, requestID, err.Error())
		return
	}
	_ = s.send(ctx, reply, proto.MsgVFSMkdirResp, proto.VFSAckPayload(requestID))
}

func (s *Service) handleRemove(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, path, ok := proto.DecodeVFSRemovePayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSRemove, 0, "decode remove")
		return
	}

	if err := s.fs.Remove(path); err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSRemove, requestID, err.Error())
		return
	}
	_ = s.send(ctx, reply, proto.MsgVFSRemoveResp, proto.VFSAckPayload(requestID))
}

func (s *Service) handleRename(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, oldPath, newPath, ok := proto.DecodeVFSRenamePayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSRename, 0, "decode rename")
		return
	}

	if err := s.fs.Rename(oldPath, newPath); err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSRename, requestID, err.Error())
		return
	}
	_ = s.send(ctx, reply, proto.MsgVFSRenameResp, proto.VFSAckPayload(requestID))
}

func (s *Service) handleCopy(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, srcPath, dstPath, ok := proto.DecodeVFSCopyPayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSCopy, 0, "decode copy")
		return
	}

	info, err := s.fs.Stat(srcPath)
	if err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSCopy, requestID, err.Error())
		return
	}
	if info.Type != ramfs.TypeFile {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSCopy, requestID, "source is not a file")
		return
	}

	w, err := s.fs.OpenWriter(dstPath, ramfs.WriteTruncate)
	if err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSCopy, requestID, err.Error())
		return
	}

	buf := make([]byte, 4096)
	var off uint32
	for {
		n, eof, err := s.fs.ReadAt(srcPath, buf, off)
		if err != nil {
			_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSCopy, requestID, err.Error())
			return
		}
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSCopy, requestID, err.Error())
				return
			}
			off += uint32(n)
		}
		if eof {
			break
		}
	}

	if err := w.Close(); err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSCopy, requestID, err.Error())
		return
	}
	_ = s.send(ctx, reply, proto.MsgVFSCopyResp, proto.VFSAckPayload(requestID))
}

// handleFind streams directory entries matching a glob pattern, one
// MsgVFSFindResp per match, terminated by a done element.
func (s *Service) handleFind(ctx *kernel.Context, msg kernel.Message) {
	reply := msg.Cap
	requestID, dir, pattern, ok := proto.DecodeVFSFindPayload(msg.Payload())
	if !ok {
		_ = s.sendErr(ctx, reply, proto.ErrBadMessage, proto.MsgVFSFind, 0, "decode find")
		return
	}

	if err := s.fs.ListDir(dir, func(name string, info ramfs.Info) bool {
		if !globMatch(pattern, name) {
			return true
		}
		payload := proto.VFSFindRespPayload(requestID, false, entryType(info.Type), name)
		_ = s.send(ctx, reply, proto.MsgVFSFindResp, payload)
		return true
	}); err != nil {
		_ = s.sendErr(ctx, reply, mapVFSError(err), proto.MsgVFSFind, requestID, err.Error())
		return
	}

	_ = s.send(ctx, reply, proto.MsgVFSFindResp, proto.VFSFindRespPayload(requestID, true, proto.VFSEntryUnknown, ""))
}

func entryType(t ramfs.Type) proto.VFSEntryType {
	switch t {
	case ramfs.TypeFile:
		return proto.VFSEntryFile
	case ramfs.TypeDir:
		return proto.VFSEntryDir
	}
	return proto.VFSEntryUnknown
}

func (s *Service) send(ctx *kernel.Context, to kernel.Capability, kind proto.Kind, payload []byte) error {
	for {
		res := ctx.SendToCapResult(to, uint16(kind), payload, kernel.Capability{})
		switch res {
		case kernel.SendOK:
			return nil
		case kernel.SendErrQueueFull:
			ctx.BlockOnTick()
		default:
			return fmt.Errorf("vfs send %s: %s", kind, res)
		}
	}
}

func (s *Service) sendErr(
	ctx *kernel.Context,
	to kernel.Capability,
	code proto.ErrCode,
	ref proto.Kind,
	requestID uint32,
	detail string,
) error {
	if !to.Valid() {
		return nil
	}
	const maxDetail = kernel.MaxMessageBytes - 8
	if len(detail) > maxDetail {
		detail = detail[:maxDetail]
	}
	d := proto.ErrorDetailWithRequestID(requestID, []byte(detail))
	return s.send(ctx, to, proto.MsgError, proto.ErrorPayload(code, ref, d))
}

func mapVFSError(err error) proto.ErrCode {
	switch {
	case errors.Is(err, ramfs.ErrNotFound):
		return proto.ErrNotFound
	case errors.Is(err, ramfs.ErrExists):
		return proto.ErrExists
	case errors.Is(err, ramfs.ErrNotEmpty):
		return proto.ErrBusy
	case errors.Is(err, ramfs.ErrNotDir), errors.Is(err, ramfs.ErrIsDir), errors.Is(err, ramfs.ErrInvalid):
		return proto.ErrBadMessage
	default:
		return proto.ErrInternal
	}
}
