package cloud

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"skelobj/pkg/skel"
)

// Load reads every point of the file at path. The extension picks the
// decoder: .pcd and .bin are point clouds, anything else is parsed as
// text lines with policy.
func Load(path string, policy skel.Policy) (ps skel.PointSet, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcd":
		ps, err = DecodePcd(f)
	case ".bin":
		ps, err = DecodeBin(f)
	default:
		ps, err = skel.ReadPoints(f, policy)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return ps, nil
}

func newPoint(x, y, z float32) (skel.Point, error) {
	for _, v := range [3]float32{x, y, z} {
		if err := skel.CheckCoord(float64(v)); err != nil {
			return skel.Point{}, err
		}
	}
	return skel.Point{
		X:    float64(x),
		Y:    float64(y),
		Z:    float64(z),
		Text: formatFloat32(x) + " " + formatFloat32(y) + " " + formatFloat32(z),
	}, nil
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
