package skel

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMalformedLine = errors.New("malformed point line")
	ErrInvalidNumber = errors.New("invalid point coordinate")
)

// Policy selects how coordinate tokens are turned into numbers.
type Policy int

const (
	// Truncate parses each token as a float. Cells truncate toward zero.
	Truncate Policy = iota
	// Integer only accepts integer literals.
	Integer
)

// Point is one input coordinate triple. Text keeps the trimmed source line
// so vertices can be written back verbatim.
type Point struct {
	X, Y, Z float64
	Text    string

	// exact holds the cell of points parsed with the Integer policy, which
	// may not fit in a float64 without rounding.
	exact *Cell
}

// Cell is a point truncated to integer coordinates.
type Cell struct {
	X, Y, Z int
}

// Cell truncates p toward zero. Coordinates must be in range, see CheckCoord.
func (p Point) Cell() Cell {
	if p.exact != nil {
		return *p.exact
	}
	return Cell{X: int(p.X), Y: int(p.Y), Z: int(p.Z)}
}

var (
	minCell = float64(math.MinInt)
	// exclusive
	maxCell = -minCell
)

// CheckCoord fails unless v is finite and truncates to a value that fits in
// an int.
func CheckCoord(v float64) error {
	t := math.Trunc(v)
	if !(t >= minCell && t < maxCell) {
		return errors.Wrapf(ErrInvalidNumber, "%v out of range", v)
	}
	return nil
}

// PointSet is ordered; the 1-based position of a point is its vertex index.
type PointSet []Point

func (ps PointSet) Cells() []Cell {
	cells := make([]Cell, len(ps))
	for i, p := range ps {
		cells[i] = p.Cell()
	}
	return cells
}

func (ps *PointSet) AddPoint(p Point) {
	*ps = append(*ps, p)
}

// ParsePoint splits line on whitespace and parses exactly three coordinates.
func ParsePoint(line string, policy Policy) (p Point, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return p, errors.Wrapf(ErrMalformedLine, "want 3 coordinates, got %d", len(fields))
	}
	p.Text = strings.Join(fields, " ")
	if policy == Integer {
		var c [3]int
		for i, f := range fields {
			c[i], err = strconv.Atoi(f)
			if err != nil {
				return Point{}, errors.Wrapf(ErrInvalidNumber, "%q", f)
			}
		}
		p.exact = &Cell{X: c[0], Y: c[1], Z: c[2]}
		p.X, p.Y, p.Z = float64(c[0]), float64(c[1]), float64(c[2])
		return p, nil
	}
	var vs [3]float64
	for i, f := range fields {
		vs[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return Point{}, errors.Wrapf(ErrInvalidNumber, "%q", f)
		}
		if err = CheckCoord(vs[i]); err != nil {
			return Point{}, err
		}
	}
	p.X, p.Y, p.Z = vs[0], vs[1], vs[2]
	return p, nil
}

// ReadPoints reads every line of r before returning. The first bad line
// aborts the read.
func ReadPoints(r io.Reader, policy Policy) (PointSet, error) {
	ps := PointSet{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	var n int
	for sc.Scan() {
		n++
		p, err := ParsePoint(sc.Text(), policy)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		ps.AddPoint(p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}
	return ps, nil
}
