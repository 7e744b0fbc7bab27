package proto

import "encoding/binary"

// TimeSleepPayload encodes a MsgTimeSleep request payload.
//
// Layout (little-endian):
//   - u32: requestID
//   - u32: dt ticks
func TimeSleepPayload(requestID uint32, dt uint32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	binary.LittleEndian.PutUint32(buf[4:8], dt)
	return buf
}

// DecodeTimeSleepPayload decodes a TimeSleepPayload.
func DecodeTimeSleepPayload(payload []byte) (requestID uint32, dt uint32, ok bool) {
	if len(payload) < 8 {
		return 0, 0, false
	}
	requestID = binary.LittleEndian.Uint32(payload[0:4])
	dt = binary.LittleEndian.Uint32(payload[4:8])
	return requestID, dt, true
}

// TimeWakePayload encodes a MsgTimeWake response payload.
//
// Layout (little-endian):
//   - u32: requestID
func TimeWakePayload(requestID uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	return buf
}

// DecodeTimeWakePayload decodes a TimeWakePayload.
func DecodeTimeWakePayload(payload []byte) (requestID uint32, ok bool) {
	if len(payload) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(payload[0:4]), true
}
