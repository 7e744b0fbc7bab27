package proto

import "encoding/binary"

// VFSEntryType is a directory entry type.
type VFSEntryType uint8

const (
	VFSEntryUnknown VFSEntryType = iota
	VFSEntryFile
	VFSEntryDir
)

// encodePathReq encodes the common path-addressed request shape.
//
// Layout (little-endian):
//   - u32: request id
//   - u16: path length
//   - bytes: path (UTF-8)
func encodePathReq(requestID uint32, path string) []byte {
	p := []byte(path)
	buf := make([]byte, 6+len(p))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(p)))
	copy(buf[6:], p)
	return buf
}

func decodePathReq(b []byte) (requestID uint32, path string, ok bool) {
	if len(b) < 6 {
		return 0, "", false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	pathLen := int(binary.LittleEndian.Uint16(b[4:6]))
	if 6+pathLen != len(b) {
		return 0, "", false
	}
	return requestID, string(b[6:]), true
}

// encodePathPairReq encodes the two-path request shape (rename, copy).
//
// Layout (little-endian):
//   - u32: request id
//   - u16: first path length
//   - bytes: first path
//   - u16: second path length
//   - bytes: second path
func encodePathPairReq(requestID uint32, a, b string) []byte {
	ab := []byte(a)
	bb := []byte(b)
	buf := make([]byte, 8+len(ab)+len(bb))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(ab)))
	copy(buf[6:], ab)
	off := 6 + len(ab)
	binary.LittleEndian.PutUint16(buf[off:off+2], uint16(len(bb)))
	copy(buf[off+2:], bb)
	return buf
}

func decodePathPairReq(buf []byte) (requestID uint32, a, b string, ok bool) {
	if len(buf) < 8 {
		return 0, "", "", false
	}
	requestID = binary.LittleEndian.Uint32(buf[0:4])
	aLen := int(binary.LittleEndian.Uint16(buf[4:6]))
	if 6+aLen+2 > len(buf) {
		return 0, "", "", false
	}
	a = string(buf[6 : 6+aLen])
	off := 6 + aLen
	bLen := int(binary.LittleEndian.Uint16(buf[off : off+2]))
	if off+2+bLen != len(buf) {
		return 0, "", "", false
	}
	b = string(buf[off+2:])
	return requestID, a, b, true
}

// VFSListPayload encodes a MsgVFSList request (see encodePathReq).
func VFSListPayload(requestID uint32, path string) []byte {
	return encodePathReq(requestID, path)
}

func DecodeVFSListPayload(b []byte) (requestID uint32, path string, ok bool) {
	return decodePathReq(b)
}

// VFSListRespPayload encodes one MsgVFSListResp stream element.
//
// Layout (little-endian):
//   - u32: request id
//   - u8: done flag (0/1)
//   - u8: entry type (VFSEntryType)
//   - u32: entry size (bytes, 0 for directories)
//   - u16: name length
//   - bytes: name (UTF-8)
func VFSListRespPayload(requestID uint32, done bool, typ VFSEntryType, size uint32, name string) []byte {
	n := []byte(name)
	buf := make([]byte, 12+len(n))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	if done {
		buf[4] = 1
	}
	buf[5] = uint8(typ)
	binary.LittleEndian.PutUint32(buf[6:10], size)
	binary.LittleEndian.PutUint16(buf[10:12], uint16(len(n)))
	copy(buf[12:], n)
	return buf
}

func DecodeVFSListRespPayload(
	b []byte,
) (requestID uint32, done bool, typ VFSEntryType, size uint32, name string, ok bool) {
	if len(b) < 12 {
		return 0, false, 0, 0, "", false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	done = b[4] != 0
	typ = VFSEntryType(b[5])
	size = binary.LittleEndian.Uint32(b[6:10])
	nameLen := int(binary.LittleEndian.Uint16(b[10:12]))
	if 12+nameLen != len(b) {
		return 0, false, 0, 0, "", false
	}
	return requestID, done, typ, size, string(b[12:]), true
}

// VFSStatPayload encodes a MsgVFSStat request (see encodePathReq).
func VFSStatPayload(requestID uint32, path string) []byte {
	return encodePathReq(requestID, path)
}

func DecodeVFSStatPayload(b []byte) (requestID uint32, path string, ok bool) {
	return decodePathReq(b)
}

// VFSStatRespPayload encodes a MsgVFSStatResp response.
//
// Layout (little-endian):
//   - u32: request id
//   - u8: entry type (VFSEntryType)
//   - u32: size
func VFSStatRespPayload(requestID uint32, typ VFSEntryType, size uint32) []byte {
	buf := make([]byte, 9)
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	buf[4] = uint8(typ)
	binary.LittleEndian.PutUint32(buf[5:9], size)
	return buf
}

func DecodeVFSStatRespPayload(b []byte) (requestID uint32, typ VFSEntryType, size uint32, ok bool) {
	if len(b) != 9 {
		return 0, 0, 0, false
	}
	return binary.LittleEndian.Uint32(b[0:4]), VFSEntryType(b[4]), binary.LittleEndian.Uint32(b[5:9]), true
}

// VFSReadPayload encodes a MsgVFSRead request.
//
// Layout (little-endian):
//   - u32: request id
//   - u32: offset
//   - u16: max bytes
//   - u16: path length
//   - bytes: path (UTF-8)
func VFSReadPayload(requestID uint32, path string, off uint32, maxBytes uint16) []byte {
	p := []byte(path)
	buf := make([]byte, 12+len(p))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	binary.LittleEndian.PutUint32(buf[4:8], off)
	binary.LittleEndian.PutUint16(buf[8:10], maxBytes)
	binary.LittleEndian.PutUint16(buf[10:12], uint16(len(p)))
	copy(buf[12:], p)
	return buf
}

func DecodeVFSReadPayload(b []byte) (requestID uint32, path string, off uint32, maxBytes uint16, ok bool) {
	if len(b) < 12 {
		return 0, "", 0, 0, false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	off = binary.LittleEndian.Uint32(b[4:8])
	maxBytes = binary.LittleEndian.Uint16(b[8:10])
	pathLen := int(binary.LittleEndian.Uint16(b[10:12]))
	if 12+pathLen != len(b) {
		return 0, "", 0, 0, false
	}
	return requestID, string(b[12:]), off, maxBytes, true
}

// VFSReadRespPayload encodes a MsgVFSReadResp response.
//
// Layout (little-endian):
//   - u32: request id
//   - u32: offset
//   - u8: eof flag (0/1)
//   - u16: data length
//   - bytes: data
func VFSReadRespPayload(requestID uint32, off uint32, eof bool, data []byte) []byte {
	buf := make([]byte, 11+len(data))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	binary.LittleEndian.PutUint32(buf[4:8], off)
	if eof {
		buf[8] = 1
	}
	binary.LittleEndian.PutUint16(buf[9:11], uint16(len(data)))
	copy(buf[11:], data)
	return buf
}

func DecodeVFSReadRespPayload(b []byte) (requestID uint32, off uint32, eof bool, data []byte, ok bool) {
	if len(b) < 11 {
		return 0, 0, false, nil, false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	off = binary.LittleEndian.Uint32(b[4:8])
	eof = b[8] != 0
	dataLen := int(binary.LittleEndian.Uint16(b[9:11]))
	if 11+dataLen != len(b) {
		return 0, 0, false, nil, false
	}
	return requestID, off, eof, b[11:], true
}

// VFSMkdirPayload encodes a MsgVFSMkdir request (see encodePathReq).
func VFSMkdirPayload(requestID uint32, path string) []byte {
	return encodePathReq(requestID, path)
}

func DecodeVFSMkdirPayload(b []byte) (requestID uint32, path string, ok bool) {
	return decodePathReq(b)
}

// VFSRemovePayload encodes a MsgVFSRemove request (see encodePathReq).
func VFSRemovePayload(requestID uint32, path string) []byte {
	return encodePathReq(requestID, path)
}

func DecodeVFSRemovePayload(b []byte) (requestID uint32, path string, ok bool) {
	return decodePathReq(b)
}

// VFSRenamePayload encodes a MsgVFSRename request (see encodePathPairReq).
func VFSRenamePayload(requestID uint32, oldPath, newPath string) []byte {
	return encodePathPairReq(requestID, oldPath, newPath)
}

func DecodeVFSRenamePayload(b []byte) (requestID uint32, oldPath, newPath string, ok bool) {
	return decodePathPairReq(b)
}

// VFSCopyPayload encodes a MsgVFSCopy request (see encodePathPairReq).
func VFSCopyPayload(requestID uint32, srcPath, dstPath string) []byte {
	return encodePathPairReq(requestID, srcPath, dstPath)
}

func DecodeVFSCopyPayload(b []byte) (requestID uint32, srcPath, dstPath string, ok bool) {
	return decodePathPairReq(b)
}

// VFSAckPayload encodes the bare request-id acknowledgement used by
// MsgVFSMkdirResp, MsgVFSRemoveResp, MsgVFSRenameResp and MsgVFSCopyResp.
//
// Layout (little-endian):
//   - u32: request id
func VFSAckPayload(requestID uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	return buf
}

func DecodeVFSAckPayload(b []byte) (requestID uint32, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[0:4]), true
}

// VFSFindPayload encodes a MsgVFSFind request.
//
// Layout (little-endian):
//   - u32: request id
//   - u16: directory length
//   - bytes: directory path (UTF-8)
//   - u16: pattern length
//   - bytes: glob pattern ('*' and '?')
func VFSFindPayload(requestID uint32, dir, pattern string) []byte {
	return encodePathPairReq(requestID, dir, pattern)
}

func DecodeVFSFindPayload(b []byte) (requestID uint32, dir, pattern string, ok bool) {
	return decodePathPairReq(b)
}

// VFSFindRespPayload encodes one MsgVFSFindResp stream element.
//
// Layout (little-endian):
//   - u32: request id
//   - u8: done flag (0/1)
//   - u8: entry type (VFSEntryType)
//   - u16: name length
//   - bytes: name (UTF-8)
func VFSFindRespPayload(requestID uint32, done bool, typ VFSEntryType, name string) []byte {
	n := []byte(name)
	buf := make([]byte, 8+len(n))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	if done {
		buf[4] = 1
	}
	buf[5] = uint8(typ)
	binary.LittleEndian.PutUint16(buf[6:8], uint16(len(n)))
	copy(buf[8:], n)
	return buf
}

func DecodeVFSFindRespPayload(b []byte) (requestID uint32, done bool, typ VFSEntryType, name string, ok bool) {
	if len(b) < 8 {
		return 0, false, 0, "", false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	done = b[4] != 0
	typ = VFSEntryType(b[5])
	nameLen := int(binary.LittleEndian.Uint16(b[6:8]))
	if 8+nameLen != len(b) {
		return 0, false, 0, "", false
	}
	return requestID, done, typ, string(b[8:]), true
}
