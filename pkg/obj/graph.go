package obj

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var ErrInvalidRecord = errors.New("invalid obj record")

// Node is a vertex together with the vertices its line records point to.
type Node struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	LinkedPoint []int   `json:"linkedPoint"`
}

// Graph is the vertex/line structure of an OBJ file, indexed from 1.
type Graph struct {
	Nodes []*Node

	// Dangling counts line records whose first vertex was never declared.
	Dangling int
}

// Node returns the vertex with 1-based index i, or nil.
func (g *Graph) Node(i int) *Node {
	if i < 1 || i > len(g.Nodes) {
		return nil
	}
	return g.Nodes[i-1]
}

// Start returns the first vertex linked to exactly one other vertex, which on
// a skeleton is the end of a branch.
func (g *Graph) Start() (int, *Node) {
	for i, n := range g.Nodes {
		if len(n.LinkedPoint) == 1 {
			return i + 1, n
		}
	}
	return 0, nil
}

// Bounds returns the corners of the box holding every vertex.
func (g *Graph) Bounds() (min, max model3d.Coord3D) {
	for i, n := range g.Nodes {
		c := model3d.Coord3D{X: n.X, Y: n.Y, Z: n.Z}
		if i == 0 {
			min, max = c, c
			continue
		}
		min = min.Min(c)
		max = max.Max(c)
	}
	return
}

// MarshalJSON encodes the graph as a list of [index, node] pairs.
func (g *Graph) MarshalJSON() ([]byte, error) {
	entries := make([][2]interface{}, len(g.Nodes))
	for i, n := range g.Nodes {
		entries[i] = [2]interface{}{i + 1, n}
	}
	return json.Marshal(entries)
}

// DecodeGraph reads v and l records from r. Other records are ignored.
func DecodeGraph(r io.Reader) (*Graph, error) {
	g := &Graph{Nodes: []*Node{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	var n int
	for sc.Scan() {
		n++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			err = g.addVertex(fields[1:])
		case "l":
			err = g.addLine(fields[1:])
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read obj")
	}
	return g, nil
}

func (g *Graph) addVertex(fields []string) error {
	if len(fields) < 3 {
		return ErrInvalidRecord
	}
	var vs [3]float64
	for i := range vs {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidRecord, "vertex coordinate %q", fields[i])
		}
		vs[i] = v
	}
	g.Nodes = append(g.Nodes, &Node{X: vs[0], Y: vs[1], Z: vs[2], LinkedPoint: []int{}})
	return nil
}

func (g *Graph) addLine(fields []string) error {
	if len(fields) < 2 {
		return ErrInvalidRecord
	}
	var idx [2]int
	for i := range idx {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return errors.Wrapf(ErrInvalidRecord, "line index %q", fields[i])
		}
		idx[i] = v
	}
	from := g.Node(idx[0])
	if from == nil {
		g.Dangling++
		return nil
	}
	from.LinkedPoint = append(from.LinkedPoint, idx[1])
	return nil
}
