package canvas

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpFillCircle
	OpStrokeLine
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill_rect"
	case OpFillCircle:
		return "fill_circle"
	case OpStrokeLine:
		return "stroke_line"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Points are stored both in user space
// (as passed) and in device space (after the transform at call time).
type Op struct {
	Kind OpKind

	Rect Rect

	X0, Y0, X1, Y1 float64
	Radius         float64

	// DX0.. are the device space coordinates of the first and second point.
	DX0, DY0, DX1, DY1 float64

	Paint  Paint
	Stroke Stroke
	Matrix Matrix
}

// Recorder is a Canvas that keeps the calls it receives.
type Recorder struct {
	TransformStack

	w, h float64
	ops  []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

// Resize changes the reported size.
func (r *Recorder) Resize(w, h float64) {
	r.w, r.h = w, h
}

func (r *Recorder) FillRect(rect Rect, p Paint) {
	m := r.Current()
	dx, dy := m.Apply(rect.X, rect.Y)
	r.ops = append(r.ops, Op{Kind: OpFillRect, Rect: rect, X0: rect.X, Y0: rect.Y, DX0: dx, DY0: dy, Paint: p, Matrix: m})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, p Paint) {
	m := r.Current()
	dx, dy := m.Apply(cx, cy)
	r.ops = append(r.ops, Op{Kind: OpFillCircle, X0: cx, Y0: cy, Radius: radius, DX0: dx, DY0: dy, Paint: p, Matrix: m})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, s Stroke) {
	m := r.Current()
	dx0, dy0 := m.Apply(x0, y0)
	dx1, dy1 := m.Apply(x1, y1)
	r.ops = append(r.ops, Op{
		Kind: OpStrokeLine,
		X0:   x0, Y0: y0, X1: x1, Y1: y1,
		DX0: dx0, DY0: dy0, DX1: dx1, DY1: dy1,
		Paint: s.Paint, Stroke: s, Matrix: m,
	})
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops the recorded calls and the transform stack.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.TransformStack.Reset()
}
