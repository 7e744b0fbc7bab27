// Package timesvc answers MsgTimeSleep requests by waking the sender after
// the requested number of ticks.
package timesvc

import (
	"ember/emberos/kernel"
	"ember/emberos/proto"
)

const maxSleepers = 32

type sleeper struct {
	inUse bool
	due   uint64
	id    uint32
	reply kernel.Capability
}

type Service struct {
	ep kernel.Capability

	sleepers [maxSleepers]sleeper
}

func New(ep kernel.Capability) *Service {
	return &Service{ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	for {
		s.wakeReady(ctx)

		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			ctx.BlockOnTick()
			continue
		}
		if msg.Kind != uint16(proto.MsgTimeSleep) {
			continue
		}
		if !msg.Cap.Valid() {
			continue
		}

		requestID, dt, ok := proto.DecodeTimeSleepPayload(msg.Payload())
		if !ok {
			payload := proto.ErrorPayload(
				proto.ErrBadMessage,
				proto.MsgTimeSleep,
				proto.ErrorDetailWithRequestID(0, nil),
			)
			_ = ctx.Send(s.ep, msg.Cap, uint16(proto.MsgError), payload)
			continue
		}
		if dt == 0 {
			_ = ctx.Send(s.ep, msg.Cap, uint16(proto.MsgTimeWake), proto.TimeWakePayload(requestID))
			continue
		}
		if ok := s.schedule(ctx.NowTick()+uint64(dt), requestID, msg.Cap); !ok {
			payload := proto.ErrorPayload(
				proto.ErrOverflow,
				proto.MsgTimeSleep,
				proto.ErrorDetailWithRequestID(requestID, nil),
			)
			_ = ctx.Send(s.ep, msg.Cap, uint16(proto.MsgError), payload)
		}
	}
}

func (s *Service) schedule(due uint64, requestID uint32, reply kernel.Capability) bool {
	for i := range s.sleepers {
		if s.sleepers[i].inUse {
			continue
		}
		s.sleepers[i] = sleeper{inUse: true, due: due, id: requestID, reply: reply}
		return true
	}
	return false
}

func (s *Service) wakeReady(ctx *kernel.Context) {
	now := ctx.NowTick()
	for i := range s.sleepers {
		sl := &s.sleepers[i]
		if !sl.inUse || sl.due > now {
			continue
		}
		_ = ctx.Send(s.ep, sl.reply, uint16(proto.MsgTimeWake), proto.TimeWakePayload(sl.id))
		*sl = sleeper{}
	}
}
