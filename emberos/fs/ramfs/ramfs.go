// Package ramfs is an in-memory hierarchical filesystem with the same API
// shape the flash filesystem wrapper exposes, used as the host VFS backing
// store and in tests.
package ramfs

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates that a path does not exist.
	ErrNotFound = errors.New("ramfs: not found")
	// ErrExists indicates that a path already exists.
	ErrExists = errors.New("ramfs: already exists")
	// ErrNotDir indicates that a path is not a directory.
	ErrNotDir = errors.New("ramfs: not a directory")
	// ErrIsDir indicates that a path is a directory when a file was expected.
	ErrIsDir = errors.New("ramfs: is a directory")
	// ErrNotEmpty indicates that a directory is not empty.
	ErrNotEmpty = errors.New("ramfs: directory not empty")
	// ErrInvalid indicates invalid arguments.
	ErrInvalid = errors.New("ramfs: invalid")
)

// Type is a directory entry type.
type Type uint8

const (
	TypeFile Type = iota + 1
	TypeDir
)

// Info describes a directory entry.
type Info struct {
	Type Type
	Size uint32
}

// WriteMode selects how writes are applied.
type WriteMode uint8

const (
	WriteTruncate WriteMode = iota
	WriteAppend
)

type node struct {
	dir      bool
	children map[string]*node
	data     []byte
}

// FS is an in-memory filesystem rooted at "/".
type FS struct {
	root *node
}

// New returns an empty filesystem.
func New() *FS {
	return &FS{root: &node{dir: true, children: map[string]*node{}}}
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalid
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, nil
	}
	parts := strings.Split(path, "/")
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			return nil, ErrInvalid
		}
	}
	return parts, nil
}

func (fs *FS) lookup(path string) (*node, error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := fs.root
	for _, p := range parts {
		if !n.dir {
			return nil, ErrNotDir
		}
		child, ok := n.children[p]
		if !ok {
			return nil, ErrNotFound
		}
		n = child
	}
	return n, nil
}

// lookupParent resolves the directory containing path and the final name.
func (fs *FS) lookupParent(path string) (*node, string, error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, "", err
	}
	if len(parts) == 0 {
		return nil, "", ErrInvalid
	}
	n := fs.root
	for _, p := range parts[:len(parts)-1] {
		if !n.dir {
			return nil, "", ErrNotDir
		}
		child, ok := n.children[p]
		if !ok {
			return nil, "", ErrNotFound
		}
		n = child
	}
	if !n.dir {
		return nil, "", ErrNotDir
	}
	return n, parts[len(parts)-1], nil
}

// Stat returns entry information for path.
func (fs *FS) Stat(path string) (Info, error) {
	n, err := fs.lookup(path)
	if err != nil {
		return Info{}, err
	}
	if n.dir {
		return Info{Type: TypeDir}, nil
	}
	return Info{Type: TypeFile, Size: uint32(len(n.data))}, nil
}

// ListDir calls fn for each entry of the directory at path, in name order.
// Iteration stops early if fn returns false.
func (fs *FS) ListDir(path string, fn func(name string, info Info) bool) error {
	n, err := fs.lookup(path)
	if err != nil {
		return err
	}
	if !n.dir {
		return ErrNotDir
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child := n.children[name]
		info := Info{Type: TypeFile, Size: uint32(len(child.data))}
		if child.dir {
			info = Info{Type: TypeDir}
		}
		if !fn(name, info) {
			return nil
		}
	}
	return nil
}

// Mkdir creates a directory; the parent must exist.
func (fs *FS) Mkdir(path string) error {
	parent, name, err := fs.lookupParent(path)
	if err != nil {
		return err
	}
	if _, ok := parent.children[name]; ok {
		return ErrExists
	}
	parent.children[name] = &node{dir: true, children: map[string]*node{}}
	return nil
}

// Remove deletes a file or an empty directory.
func (fs *FS) Remove(path string) error {
	parent, name, err := fs.lookupParent(path)
	if err != nil {
		return err
	}
	n, ok := parent.children[name]
	if !ok {
		return ErrNotFound
	}
	if n.dir && len(n.children) > 0 {
		return ErrNotEmpty
	}
	delete(parent.children, name)
	return nil
}

// Rename moves a file or directory; the destination must not exist.
func (fs *FS) Rename(oldPath, newPath string) error {
	oldParent, oldName, err := fs.lookupParent(oldPath)
	if err != nil {
		return err
	}
	n, ok := oldParent.children[oldName]
	if !ok {
		return ErrNotFound
	}
	newParent, newName, err := fs.lookupParent(newPath)
	if err != nil {
		return err
	}
	if _, ok := newParent.children[newName]; ok {
		return ErrExists
	}
	delete(oldParent.children, oldName)
	newParent.children[newName] = n
	return nil
}

// ReadAt reads up to len(p) bytes of the file at path starting at off.
func (fs *FS) ReadAt(path string, p []byte, off uint32) (n int, eof bool, err error) {
	fn, err := fs.lookup(path)
	if err != nil {
		return 0, false, err
	}
	if fn.dir {
		return 0, false, ErrIsDir
	}
	if int(off) >= len(fn.data) {
		return 0, true, nil
	}
	n = copy(p, fn.data[off:])
	return n, int(off)+n >= len(fn.data), nil
}

// Writer accumulates file data until Close.
type Writer struct {
	fs      *FS
	path    string
	mode    WriteMode
	buf     []byte
	written uint32
	closed  bool
}

// OpenWriter opens a file for writing, creating it if needed.
func (fs *FS) OpenWriter(path string, mode WriteMode) (*Writer, error) {
	parent, name, err := fs.lookupParent(path)
	if err != nil {
		return nil, err
	}
	if existing, ok := parent.children[name]; ok && existing.dir {
		return nil, ErrIsDir
	}
	w := &Writer{fs: fs, path: path, mode: mode}
	if mode == WriteAppend {
		if existing, ok := parent.children[name]; ok {
			w.buf = append(w.buf, existing.data...)
		}
	}
	return w, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrInvalid
	}
	w.buf = append(w.buf, p...)
	w.written += uint32(len(p))
	return len(p), nil
}

// BytesWritten returns the number of bytes written so far.
func (w *Writer) BytesWritten() uint32 { return w.written }

// Close commits the accumulated data to the filesystem.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	parent, name, err := w.fs.lookupParent(w.path)
	if err != nil {
		return err
	}
	if existing, ok := parent.children[name]; ok {
		if existing.dir {
			return ErrIsDir
		}
		existing.data = w.buf
		return nil
	}
	parent.children[name] = &node{data: w.buf}
	return nil
}

// WriteFile creates or replaces a file in one call.
func (fs *FS) WriteFile(path string, data []byte) error {
	w, err := fs.OpenWriter(path, WriteTruncate)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Close()
}
