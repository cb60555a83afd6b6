package cloud

import (
	"io"

	"github.com/pkg/errors"
	"github.com/seqsense/pcgol/pc"

	"skelobj/pkg/skel"
)

// DecodePcd reads the x, y and z fields of a PCD file in any of its
// ascii, binary or binary_compressed encodings.
func DecodePcd(r io.Reader) (skel.PointSet, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode pcd")
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, errors.Wrap(err, "decode pcd")
	}
	ps := skel.PointSet{}
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		p, err := newPoint(v[0], v[1], v[2])
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", len(ps)+1)
		}
		ps.AddPoint(p)
	}
	return ps, nil
}
