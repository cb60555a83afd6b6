package obj

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/unixpickle/model3d/model3d"

	"skelobj/pkg/skel"
)

// Writer emits OBJ vertex and line records.
type Writer struct {
	w        *bufio.Writer
	vertices int
	lines    int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Vertex(c model3d.Coord3D) error {
	_, err := w.w.WriteString("v " + FormatFloat(c.X) + " " + FormatFloat(c.Y) + " " + FormatFloat(c.Z) + "\n")
	if err == nil {
		w.vertices++
	}
	return err
}

// VertexText writes text as the body of a vertex record unchanged.
func (w *Writer) VertexText(text string) error {
	_, err := w.w.WriteString("v " + text + "\n")
	if err == nil {
		w.vertices++
	}
	return err
}

func (w *Writer) Line(e skel.Edge) error {
	_, err := w.w.WriteString("l " + strconv.Itoa(e.From) + " " + strconv.Itoa(e.To) + "\n")
	if err == nil {
		w.lines++
	}
	return err
}

// Lines runs the neighbour scan over cells and writes one line record per
// close ordered pair.
func (w *Writer) Lines(cells []skel.Cell) error {
	return skel.Neighbors(cells, w.Line)
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Counts returns how many vertex and line records have been written.
func (w *Writer) Counts() (vertices, lines int) {
	return w.vertices, w.lines
}

// Encode writes every vertex and then the lines between close cells.
func Encode(out io.Writer, vertices []model3d.Coord3D, cells []skel.Cell) (nv, nl int, err error) {
	w := NewWriter(out)
	for _, v := range vertices {
		if err = w.Vertex(v); err != nil {
			return
		}
	}
	if err = w.Lines(cells); err != nil {
		return
	}
	err = w.Flush()
	nv, nl = w.Counts()
	return
}

// FormatFloat renders the shortest decimal that round-trips, always with a
// fractional part or exponent: 1.0, 0.25, 1e-05, 1e+16.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
