package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"

	"skelobj/pkg/cloud"
	"skelobj/pkg/obj"
	"skelobj/pkg/skel"
)

const OBJExt = ".obj"

// Result describes one finished conversion.
type Result struct {
	Input    string
	Output   string
	Vertices int
	Lines    int
}

// OBJPath appends .obj to name unless it already ends with it, ignoring case.
func OBJPath(name string) string {
	if strings.HasSuffix(strings.ToLower(name), OBJExt) {
		return name
	}
	return name + OBJExt
}

// ScaledPath is where ScaleOffset writes its output for input path.
func ScaledPath(path string) string {
	return path + ".scaled" + OBJExt
}

// GraphPath replaces the extension of path with .json.
func GraphPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}

// SDPOptions configures SDPToOBJ.
type SDPOptions struct {
	Input  string
	Output string
	Policy skel.Policy
}

// SDPToOBJ writes each input point verbatim as a vertex, followed by the
// lines between close points.
func SDPToOBJ(opts SDPOptions) (*Result, error) {
	ps, err := cloud.Load(opts.Input, opts.Policy)
	if err != nil {
		return nil, err
	}
	res := &Result{Input: opts.Input, Output: OBJPath(opts.Output)}
	err = writeFile(res.Output, func(w *obj.Writer) error {
		for _, p := range ps {
			if err := w.VertexText(p.Text); err != nil {
				return err
			}
		}
		return w.Lines(ps.Cells())
	}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ScaleOptions configures ScaleOffset.
type ScaleOptions struct {
	Input     string
	Transform skel.Transform
	Adjacency skel.Adjacency
	Policy    skel.Policy
}

// ScaleOffset writes every input point through opts.Transform. Lines are
// computed on the raw or transformed coordinates depending on
// opts.Adjacency; the empty mode means raw.
func ScaleOffset(opts ScaleOptions) (*Result, error) {
	if err := opts.Transform.Validate(); err != nil {
		return nil, err
	}
	ps, err := cloud.Load(opts.Input, opts.Policy)
	if err != nil {
		return nil, err
	}
	coords := opts.Transform.ApplyAll(ps)
	cells, err := skel.AdjacencyCells(opts.Adjacency, ps, coords)
	if err != nil {
		return nil, err
	}

	res := &Result{Input: opts.Input, Output: ScaledPath(opts.Input)}
	f, err := os.Create(res.Output)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res.Vertices, res.Lines, err = obj.Encode(f, coords, cells)
	if err != nil {
		return nil, errors.Wrapf(err, "write %s", res.Output)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return res, nil
}

// GraphOptions configures OBJToGraph.
type GraphOptions struct {
	Input  string
	Output string
}

// GraphResult describes a finished OBJToGraph run.
type GraphResult struct {
	Result
	Dangling int

	// Start is the 1-based index of the first branch end, or 0.
	Start int

	// Min and Max are the corners of the box holding every vertex.
	Min, Max model3d.Coord3D
}

// OBJToGraph reads an OBJ skeleton and writes its vertices with their
// linked vertices as JSON.
func OBJToGraph(opts GraphOptions) (*GraphResult, error) {
	in, err := os.Open(opts.Input)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	g, err := obj.DecodeGraph(in)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", opts.Input)
	}
	res := &GraphResult{
		Result: Result{
			Input:    opts.Input,
			Output:   opts.Output,
			Vertices: len(g.Nodes),
		},
		Dangling: g.Dangling,
	}
	if res.Output == "" {
		res.Output = GraphPath(opts.Input)
	}
	for _, n := range g.Nodes {
		res.Lines += len(n.LinkedPoint)
	}
	res.Start, _ = g.Start()
	res.Min, res.Max = g.Bounds()

	data, err := json.Marshal(g)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", opts.Input)
	}
	if err := os.WriteFile(res.Output, append(data, '\n'), 0644); err != nil {
		return nil, err
	}
	return res, nil
}

func writeFile(path string, fn func(w *obj.Writer) error, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := obj.NewWriter(f)
	if err := fn(w); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	res.Vertices, res.Lines = w.Counts()
	return f.Close()
}
