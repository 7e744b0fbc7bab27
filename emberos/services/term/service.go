// Package term is the display coprocessor: it renders a character grid to
// the framebuffer and answers cursor/size queries for the byte stream it
// consumes.
package term

import (
	"image/color"

	"ember/emberos/kernel"
	"ember/emberos/proto"
	"ember/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Cell geometry for proggy.TinySZ8pt7b.
const (
	cellWidth    = 6
	cellHeight   = 10
	fontBaseline = 8
	bellTicks    = 8
)

// palette is the 16-entry foreground color table selected by the 0x11
// control sequence. Index 15 is the default foreground.
var palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0xAA, 0x00, 0x00, 0xFF}, // red
	{0x00, 0xAA, 0x00, 0xFF}, // green
	{0xAA, 0x55, 0x00, 0xFF}, // yellow
	{0x00, 0x00, 0xAA, 0xFF}, // blue
	{0xAA, 0x00, 0xAA, 0xFF}, // magenta
	{0x00, 0xAA, 0xAA, 0xFF}, // cyan
	{0xAA, 0xAA, 0xAA, 0xFF}, // white
	{0x55, 0x55, 0x55, 0xFF}, // bright black
	{0xFF, 0x55, 0x55, 0xFF}, // bright red
	{0x55, 0xFF, 0x55, 0xFF}, // bright green
	{0xFF, 0xFF, 0x55, 0xFF}, // bright yellow
	{0x55, 0x55, 0xFF, 0xFF}, // bright blue
	{0xFF, 0x55, 0xFF, 0xFF}, // bright magenta
	{0x55, 0xFF, 0xFF, 0xFF}, // bright cyan
	{0xFF, 0xFF, 0xFF, 0xFF}, // bright white
}

type Service struct {
	disp hal.Display
	ep   kernel.Capability

	fb  hal.Framebuffer
	d   *fbDisplay
	scr *screen

	bellLeft int
}

func New(disp hal.Display, ep kernel.Capability) *Service {
	return &Service{disp: disp, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}

	if s.disp == nil {
		return
	}
	s.fb = s.disp.Framebuffer()
	if s.fb == nil {
		return
	}

	s.d = newFBDisplay(s.fb)
	s.scr = newScreen(s.fb.Width()/cellWidth, s.fb.Height()/cellHeight)
	s.fb.ClearRGB(0, 0, 0)
	_ = s.fb.Present()

	dirty := false

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	for {
		select {
		case <-tickCh:
			if s.bellLeft > 0 {
				s.bellLeft--
				if s.bellLeft == 0 {
					dirty = true
				}
			}
			if dirty {
				s.render()
				dirty = false
			}

		case msg := <-ch:
			switch proto.Kind(msg.Kind) {
			case proto.MsgTermWrite:
				s.scr.put(msg.Payload())
				if s.scr.takeBell() {
					s.bellLeft = bellTicks
				}
				dirty = true

			case proto.MsgTermClear:
				s.scr.clear()
				dirty = true

			case proto.MsgTermCursor:
				if msg.Cap.Valid() {
					payload := proto.TermCursorRespPayload(s.scr.col, s.scr.row, true)
					_ = ctx.SendTo(msg.Cap, uint16(proto.MsgTermCursorResp), payload)
				}

			case proto.MsgTermSize:
				if msg.Cap.Valid() {
					payload := proto.TermSizeRespPayload(s.scr.cols, s.scr.rows)
					_ = ctx.SendTo(msg.Cap, uint16(proto.MsgTermSizeResp), payload)
				}
			}
		}
	}
}

func (s *Service) render() {
	bg := palette[0]
	_ = s.d.FillRectangle(0, 0, int16(s.fb.Width()), int16(s.fb.Height()), bg)

	for row := 0; row < s.scr.rows; row++ {
		y := int16(row*cellHeight + fontBaseline)
		for col := 0; col < s.scr.cols; col++ {
			c := s.scr.at(col, row)
			if c.ch == ' ' {
				continue
			}
			x := int16(col * cellWidth)
			tinyfont.WriteLine(s.d, &proggy.TinySZ8pt7b, x, y, string(rune(c.ch)), palette[c.fg&0x0F])
		}
	}

	// Cursor underline.
	cx := int16(s.scr.col * cellWidth)
	cy := int16(s.scr.row*cellHeight + cellHeight - 2)
	_ = s.d.FillRectangle(cx, cy, cellWidth, 2, palette[defaultFG])

	if s.bellLeft > 0 {
		s.flashBorder()
	}

	_ = s.d.Display()
}

func (s *Service) flashBorder() {
	w := int16(s.fb.Width())
	h := int16(s.fb.Height())
	c := palette[defaultFG]
	_ = s.d.FillRectangle(0, 0, w, 2, c)
	_ = s.d.FillRectangle(0, h-2, w, 2, c)
	_ = s.d.FillRectangle(0, 0, 2, h, c)
	_ = s.d.FillRectangle(w-2, 0, 2, h, c)
}
