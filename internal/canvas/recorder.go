package canvas

import (
	"image"
	"sync"
)

// OpKind distinguishes recorded commands.
type OpKind string

const (
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
)

// Op is one recorded drawing command.
type Op struct {
	Kind    OpKind
	Path    *Path
	Paint   Paint
	Width   float64
	Options Options
}

// Recorder is a Canvas that keeps the commands it receives instead of
// rasterizing them.
type Recorder struct {
	mu     sync.Mutex
	bounds image.Rectangle
	ops    []Op
}

func NewRecorder(bounds image.Rectangle) *Recorder {
	return &Recorder{bounds: bounds}
}

func (r *Recorder) Bounds() image.Rectangle { return r.bounds }

func (r *Recorder) Fill(p *Path, paint Paint, opts Options) {
	r.record(Op{Kind: OpFill, Path: p.Clone(), Paint: paint, Options: opts})
}

func (r *Recorder) Stroke(p *Path, width float64, paint Paint, opts Options) {
	r.record(Op{Kind: OpStroke, Path: p.Clone(), Paint: paint, Width: width, Options: opts})
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

// Ops returns the recorded commands in order.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Reset drops every recorded command.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
}
