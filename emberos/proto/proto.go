package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgError
	MsgTermWrite
	MsgTermClear
	MsgTermCursor
	MsgTermCursorResp
	MsgTermSize
	MsgTermSizeResp
	MsgKeyEvent
	MsgVFSList
	MsgVFSListResp
	MsgVFSStat
	MsgVFSStatResp
	MsgVFSRead
	MsgVFSReadResp
	MsgVFSMkdir
	MsgVFSMkdirResp
	MsgVFSRemove
	MsgVFSRemoveResp
	MsgVFSRename
	MsgVFSRenameResp
	MsgVFSCopy
	MsgVFSCopyResp
	MsgVFSFind
	MsgVFSFindResp
	MsgTimeSleep
	MsgTimeWake
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgError:
		return "error"
	case MsgTermWrite:
		return "term_write"
	case MsgTermClear:
		return "term_clear"
	case MsgTermCursor:
		return "term_cursor"
	case MsgTermCursorResp:
		return "term_cursor_resp"
	case MsgTermSize:
		return "term_size"
	case MsgTermSizeResp:
		return "term_size_resp"
	case MsgKeyEvent:
		return "key_event"
	case MsgVFSList:
		return "vfs_list"
	case MsgVFSListResp:
		return "vfs_list_resp"
	case MsgVFSStat:
		return "vfs_stat"
	case MsgVFSStatResp:
		return "vfs_stat_resp"
	case MsgVFSRead:
		return "vfs_read"
	case MsgVFSReadResp:
		return "vfs_read_resp"
	case MsgVFSMkdir:
		return "vfs_mkdir"
	case MsgVFSMkdirResp:
		return "vfs_mkdir_resp"
	case MsgVFSRemove:
		return "vfs_remove"
	case MsgVFSRemoveResp:
		return "vfs_remove_resp"
	case MsgVFSRename:
		return "vfs_rename"
	case MsgVFSRenameResp:
		return "vfs_rename_resp"
	case MsgVFSCopy:
		return "vfs_copy"
	case MsgVFSCopyResp:
		return "vfs_copy_resp"
	case MsgVFSFind:
		return "vfs_find"
	case MsgVFSFindResp:
		return "vfs_find_resp"
	case MsgTimeSleep:
		return "time_sleep"
	case MsgTimeWake:
		return "time_wake"
	default:
		return "unknown"
	}
}

// ErrCode is a generic error category for MsgError responses.
type ErrCode uint16

const (
	ErrUnknown ErrCode = iota
	ErrBadMessage
	ErrNotFound
	ErrExists
	ErrBusy
	ErrOverflow
	ErrTooLarge
	ErrInternal
)

func (c ErrCode) String() string {
	switch c {
	case ErrUnknown:
		return "unknown"
	case ErrBadMessage:
		return "bad_message"
	case ErrNotFound:
		return "not_found"
	case ErrExists:
		return "exists"
	case ErrBusy:
		return "busy"
	case ErrOverflow:
		return "overflow"
	case ErrTooLarge:
		return "too_large"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}
