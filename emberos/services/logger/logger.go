// Package logger is the MsgLogLine sink: it drains its endpoint and writes
// each line through the HAL logger.
package logger

import (
	"ember/emberos/kernel"
	"ember/emberos/proto"
	"ember/hal"
)

type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	for {
		msg, ok := ctx.Recv(s.ep)
		if !ok {
			return
		}
		if s.log == nil {
			continue
		}
		if msg.Kind != uint16(proto.MsgLogLine) {
			continue
		}
		s.log.WriteLineBytes(msg.Payload())
	}
}
