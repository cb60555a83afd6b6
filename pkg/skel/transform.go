package skel

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var ErrInvalidScale = errors.New("scale must be a finite non-zero number")

// Adjacency selects which coordinates the neighbour test runs on when a
// Transform is applied to the written vertices.
type Adjacency string

const (
	// AdjacencyRaw tests the untransformed input coordinates.
	AdjacencyRaw Adjacency = "raw"
	// AdjacencyScaled tests the transformed coordinates, truncated.
	AdjacencyScaled Adjacency = "scaled"
)

func ParseAdjacency(s string) (Adjacency, error) {
	switch a := Adjacency(s); a {
	case AdjacencyRaw, AdjacencyScaled:
		return a, nil
	}
	return "", errors.Errorf("unknown adjacency mode %q (want raw or scaled)", s)
}

// Transform maps a raw point to raw/Scale - Offset on every axis.
type Transform struct {
	Scale  float64
	Offset model3d.Coord3D
}

func (t Transform) Validate() error {
	if t.Scale == 0 || math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) {
		return ErrInvalidScale
	}
	return nil
}

func (t Transform) Apply(p Point) model3d.Coord3D {
	c := model3d.Coord3D{X: p.X / t.Scale, Y: p.Y / t.Scale, Z: p.Z / t.Scale}
	return c.Sub(t.Offset)
}

func (t Transform) ApplyAll(ps PointSet) []model3d.Coord3D {
	res := make([]model3d.Coord3D, len(ps))
	for i, p := range ps {
		res[i] = t.Apply(p)
	}
	return res
}

// Cells truncates coordinates toward zero. It fails on coordinates
// CheckCoord rejects.
func Cells(coords []model3d.Coord3D) ([]Cell, error) {
	cells := make([]Cell, len(coords))
	for i, c := range coords {
		for _, v := range [3]float64{c.X, c.Y, c.Z} {
			if err := CheckCoord(v); err != nil {
				return nil, errors.Wrapf(err, "point %d", i+1)
			}
		}
		cells[i] = Cell{X: int(c.X), Y: int(c.Y), Z: int(c.Z)}
	}
	return cells, nil
}

// AdjacencyCells returns the cells the neighbour scan should use for ps once
// it has been transformed into coords.
func AdjacencyCells(mode Adjacency, ps PointSet, coords []model3d.Coord3D) ([]Cell, error) {
	if mode == AdjacencyScaled {
		return Cells(coords)
	}
	return ps.Cells(), nil
}
