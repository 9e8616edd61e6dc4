/*
Package workspace implements a pool of reusable node buffers for the normalizer.

Buffers are organized in frames, one frame per recursion depth. A client enters
a new depth with Enter, acquires buffers from the frame of the current depth and
releases them when done; released buffers are kept for re-use by later calls on
the same depth. A buffer is exclusively owned by the call which acquired it.

    leave := ws.Enter()
    defer leave()
    buf := ws.Acquire()
    defer buf.Release()

A Workspace is not synchronized. Parallel normalizations need a workspace each.

Configuration key 'workspace-max-pooled' bounds the number of free buffers
retained per frame.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package workspace

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/symnorm/atom"
)

// tracer traces with key 'symnorm.workspace'.
func tracer() tracing.Trace {
	return tracing.Select("symnorm.workspace")
}

// DefaultMaxPooled is the number of free buffers retained per frame if not
// configured otherwise.
const DefaultMaxPooled = 32

// Buffer is a growable list of atoms, borrowed from a workspace.
type Buffer struct {
	Atoms []*atom.Atom
	fr    *frame
	ws    *Workspace
}

// Append adds atoms to the buffer.
func (b *Buffer) Append(atoms ...*atom.Atom) {
	b.Atoms = append(b.Atoms, atoms...)
}

// Len returns the number of atoms in the buffer.
func (b *Buffer) Len() int {
	return len(b.Atoms)
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	for i := range b.Atoms {
		b.Atoms[i] = nil
	}
	b.Atoms = b.Atoms[:0]
}

// Release returns the buffer to its workspace. Releasing a buffer twice is a no-op.
// The buffer must not be used after it has been released.
func (b *Buffer) Release() {
	if b.ws == nil {
		return
	}
	b.Reset()
	b.ws.outstanding--
	if b.fr.free.Size() < b.ws.maxPooled {
		b.fr.free.Push(b)
	}
	b.ws = nil
}

// --- Frames ----------------------------------------------------------------

// frame holds the free buffers of one recursion depth.
type frame struct {
	depth int
	free  *arraystack.Stack
}

func newFrame(depth int) *frame {
	return &frame{depth: depth, free: arraystack.New()}
}

func (fr *frame) String() string {
	return fmt.Sprintf("<frame %d, %d free>", fr.depth, fr.free.Size())
}

// === Workspace =============================================================

// Workspace is a pool of buffers, keyed by call depth.
type Workspace struct {
	frames      *arraylist.List // of *frame, index = depth
	depth       int
	maxPooled   int
	outstanding int
}

// New creates an empty workspace.
func New() *Workspace {
	max := gconf.GetInt("workspace-max-pooled")
	if max <= 0 {
		max = DefaultMaxPooled
	}
	return &Workspace{
		frames:    arraylist.New(newFrame(0)),
		maxPooled: max,
	}
}

// Enter descends one level of recursion. It returns a function to ascend again,
// which should be deferred by the caller.
func (ws *Workspace) Enter() (leave func()) {
	ws.depth++
	if ws.depth >= ws.frames.Size() {
		ws.frames.Add(newFrame(ws.depth))
		tracer().P("depth", ws.depth).Debugf("new workspace frame")
	}
	d := ws.depth
	return func() {
		if ws.depth != d {
			panic(fmt.Sprintf("workspace: unbalanced leave, at depth %d, expected %d", ws.depth, d))
		}
		ws.depth--
	}
}

// Depth returns the current recursion depth.
func (ws *Workspace) Depth() int {
	return ws.depth
}

// Acquire hands out a buffer from the frame of the current depth. The buffer is
// empty and owned exclusively by the caller until released.
func (ws *Workspace) Acquire() *Buffer {
	fr := ws.currentFrame()
	ws.outstanding++
	if b, ok := fr.free.Pop(); ok {
		buf := b.(*Buffer)
		buf.ws = ws
		return buf
	}
	return &Buffer{fr: fr, ws: ws, Atoms: make([]*atom.Atom, 0, 8)}
}

func (ws *Workspace) currentFrame() *frame {
	fr, ok := ws.frames.Get(ws.depth)
	if !ok {
		panic(fmt.Sprintf("workspace: no frame for depth %d", ws.depth))
	}
	return fr.(*frame)
}

// Outstanding returns the number of buffers acquired and not yet released.
func (ws *Workspace) Outstanding() int {
	return ws.outstanding
}

// Pooled returns the number of free buffers retained at depth d.
func (ws *Workspace) Pooled(d int) int {
	if fr, ok := ws.frames.Get(d); ok {
		return fr.(*frame).free.Size()
	}
	return 0
}

func (ws *Workspace) String() string {
	return fmt.Sprintf("<workspace depth=%d frames=%d outstanding=%d>",
		ws.depth, ws.frames.Size(), ws.outstanding)
}
