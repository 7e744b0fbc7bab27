// Package termkbd turns HAL keyboard events into MsgKeyEvent messages,
// applying key repeat for held navigation keys.
package termkbd

import (
	"ember/emberos/kernel"
	"ember/emberos/proto"
	"ember/hal"
)

type Service struct {
	in     hal.Input
	outCap kernel.Capability

	events <-chan hal.KeyEvent

	held           proto.KeyEvent
	holding        bool
	heldCode       hal.KeyCode
	nextRepeatTick uint64
}

// New writes key events to the given consumer endpoint (e.g. the shell).
func New(in hal.Input, outCap kernel.Capability) *Service {
	return &Service{in: in, outCap: outCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.in == nil {
		return
	}
	kbd := s.in.Keyboard()
	if kbd == nil {
		return
	}
	s.events = kbd.Events()
	if s.events == nil {
		return
	}

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			select {
			case <-done:
				return
			default:
			}
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			s.handleKeyEvent(ctx, ev)
		case tick := <-tickCh:
			s.handleRepeat(ctx, tick)
		}
	}
}

func (s *Service) handleKeyEvent(ctx *kernel.Context, ev hal.KeyEvent) {
	pe, ok := translate(ev)
	if !ok {
		return
	}

	if !ev.Press {
		if s.holding && ev.Code == s.heldCode {
			s.holding = false
			s.nextRepeatTick = 0
		}
		s.send(ctx, pe)
		return
	}

	s.send(ctx, pe)

	if !repeatableKey(ev) {
		return
	}
	s.held = pe
	s.holding = true
	s.heldCode = ev.Code
	s.nextRepeatTick = ctx.NowTick() + repeatDelayTicks
}

func (s *Service) handleRepeat(ctx *kernel.Context, tick uint64) {
	if !s.holding || tick < s.nextRepeatTick {
		return
	}
	s.send(ctx, s.held)
	s.nextRepeatTick = tick + repeatRateTicks
}

func (s *Service) send(ctx *kernel.Context, ev proto.KeyEvent) {
	if !s.outCap.Valid() {
		return
	}
	payload := proto.KeyEventPayload(ev)
	// Drop on queue full rather than stalling the event stream.
	_ = ctx.SendToCapResult(s.outCap, uint16(proto.MsgKeyEvent), payload, kernel.Capability{})
}

const (
	// Ticks are 1ms on host.
	// These values aim to match typical desktop key-repeat feel without spamming.
	repeatDelayTicks = 350
	repeatRateTicks  = 60
)

func repeatableKey(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight,
		hal.KeyBackspace, hal.KeyDelete, hal.KeyHome, hal.KeyEnd:
		return true
	}
	return ev.Rune != 0
}

var vkeyFromCode = map[hal.KeyCode]proto.VKey{
	hal.KeyUp:       proto.VKUp,
	hal.KeyDown:     proto.VKDown,
	hal.KeyLeft:     proto.VKLeft,
	hal.KeyRight:    proto.VKRight,
	hal.KeyHome:     proto.VKHome,
	hal.KeyEnd:      proto.VKEnd,
	hal.KeyPageUp:   proto.VKPageUp,
	hal.KeyPageDown: proto.VKPageDown,
	hal.KeyDelete:   proto.VKDelete,
	hal.KeyF1:       proto.VKF1,
	hal.KeyF2:       proto.VKF2,
	hal.KeyF3:       proto.VKF3,
	hal.KeyF4:       proto.VKF4,
	hal.KeyF5:       proto.VKF5,
	hal.KeyF6:       proto.VKF6,
	hal.KeyF7:       proto.VKF7,
	hal.KeyF8:       proto.VKF8,
	hal.KeyF9:       proto.VKF9,
	hal.KeyF10:      proto.VKF10,
	hal.KeyF11:      proto.VKF11,
	hal.KeyF12:      proto.VKF12,
}

func translate(ev hal.KeyEvent) (proto.KeyEvent, bool) {
	pe := proto.KeyEvent{Down: ev.Press}

	if ev.Rune != 0 {
		if ev.Rune > 0x7E {
			return proto.KeyEvent{}, false
		}
		pe.ASCII = byte(ev.Rune)
		return pe, true
	}

	switch ev.Code {
	case hal.KeyEnter:
		pe.ASCII = 0x0D
	case hal.KeyEscape:
		pe.ASCII = 0x1B
	case hal.KeyBackspace:
		pe.ASCII = 0x7F
	case hal.KeyTab:
		pe.ASCII = 0x09
	default:
		vk, ok := vkeyFromCode[ev.Code]
		if !ok {
			return proto.KeyEvent{}, false
		}
		pe.VKey = vk
	}
	return pe, true
}
