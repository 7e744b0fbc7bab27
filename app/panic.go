package app

import (
	"fmt"
	"image/color"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"ember/emberos/kernel"
	"ember/hal"
)

// Panic screen metrics for the proggy terminal font.
const (
	panicCellWidth  = 6
	panicCellHeight = 10
	panicBaseline   = 8
)

// installPanicHandler routes a recovered task panic to the log and paints
// a diagnostic screen. The handler never returns.
func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("ember panic: task=%d panic=%v", info.TaskID, info.Value))
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line != "" {
					l.WriteLineString(line)
				}
			}
		}

		disp := h.Display()
		if disp == nil {
			select {}
		}
		fb := disp.Framebuffer()
		if fb == nil {
			select {}
		}

		fb.ClearRGB(0, 0, 0)

		lines := []string{
			"EmberOS panic",
			fmt.Sprintf("task: %d", info.TaskID),
			fmt.Sprintf("panic: %v", info.Value),
		}
		if len(info.Stack) > 0 {
			lines = append(lines, "stack:")
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line != "" {
					lines = append(lines, line)
				}
			}
		} else {
			lines = append(lines, "stack: unavailable")
		}

		d := panicDisplay{fb: fb}
		fg := color.RGBA{R: 255, G: 80, B: 80, A: 255}
		cols := fb.Width() / panicCellWidth
		if cols < 1 {
			cols = 1
		}
		rows := fb.Height() / panicCellHeight

		y := 0
		for _, line := range lines {
			for len(line) > 0 && y < rows {
				n := len(line)
				if n > cols {
					n = cols
				}
				tinyfont.WriteLine(&d, &proggy.TinySZ8pt7b, 0, int16(y*panicCellHeight+panicBaseline), line[:n], fg)
				line = strings.TrimLeft(line[n:], " ")
				y++
			}
			if y >= rows {
				break
			}
		}

		_ = fb.Present()
		select {}
	})
}

// panicDisplay is a minimal tinyfont drawing target over the raw
// framebuffer, independent of the terminal service.
type panicDisplay struct {
	fb hal.Framebuffer
}

func (d *panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if buf == nil || ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := (uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | uint16(c.B>>3)&0x1F
	off := iy*d.fb.StrideBytes() + ix*2
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *panicDisplay) Display() error { return nil }
