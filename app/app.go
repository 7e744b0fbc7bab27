// Package app assembles the OS: it creates the kernel, grants each service
// the capabilities it needs and seeds the filesystem image.
package app

import (
	"ember/emberos/fs/ramfs"
	"ember/emberos/kernel"
	"ember/emberos/services/logger"
	"ember/emberos/services/shell"
	"ember/emberos/services/term"
	"ember/emberos/services/termkbd"
	timesvc "ember/emberos/services/time"
	vfssvc "ember/emberos/services/vfs"
	"ember/hal"
)

type system struct {
	k *kernel.Kernel
}

// New initializes and starts the OS.
func New(h hal.HAL) func() error {
	_ = newSystem(h)
	return func() error { return nil }
}

// Run starts the OS and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func newSystem(h hal.HAL) *system {
	installPanicHandler(h)

	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	timeEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	termEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	vfsEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	keysEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(timesvc.New(timeEP))
	k.AddTask(term.New(h.Display(), termEP.Restrict(kernel.RightRecv)))
	k.AddTask(termkbd.New(h.Input(), keysEP.Restrict(kernel.RightSend)))
	k.AddTask(vfssvc.New(seedFS(), vfsEP.Restrict(kernel.RightRecv)))
	k.AddTask(&shell.Service{
		Keys: keysEP.Restrict(kernel.RightRecv),
		Term: termEP.Restrict(kernel.RightSend),
		VFS:  vfsEP.Restrict(kernel.RightSend),
		Time: timeEP.Restrict(kernel.RightSend),
		Log:  logEP.Restrict(kernel.RightSend),
	})

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}

// seedFS builds the boot filesystem image. There is no persistent storage
// on the host build, so the layout is recreated on every start.
func seedFS() *ramfs.FS {
	fs := ramfs.New()

	for _, dir := range []string{"/bin", "/mos", "/home"} {
		if err := fs.Mkdir(dir); err != nil {
			panic(err)
		}
	}

	seed := map[string][]byte{
		"/mos/hello.bin":   []byte("\x7fEMB placeholder image: hello"),
		"/mos/clock.bin":   []byte("\x7fEMB placeholder image: clock"),
		"/bin/snake.bin":   []byte("\x7fEMB placeholder image: snake"),
		"/home/readme.txt": []byte("EmberOS scratch filesystem.\nEdit freely: nothing survives a reboot.\n"),
	}
	for path, data := range seed {
		if err := fs.WriteFile(path, data); err != nil {
			panic(err)
		}
	}
	return fs
}
