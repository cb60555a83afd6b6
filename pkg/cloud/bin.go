package cloud

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"skelobj/pkg/skel"
)

const (
	// BinPointDataLen is the size of one x, y, z, intensity record.
	BinPointDataLen = 4 * 4
)

var (
	ErrInvalidDataFormat = errors.New("invalid data")
)

// DecodeBin reads little-endian float32 records of x, y, z and intensity
// until EOF. Intensity is dropped.
func DecodeBin(r io.Reader) (skel.PointSet, error) {
	ps := skel.PointSet{}
	data := make([]byte, BinPointDataLen)
	for {
		_, err := io.ReadFull(r, data)
		if err != nil {
			if err == io.EOF {
				return ps, nil
			}
			if err == io.ErrUnexpectedEOF {
				return nil, errors.Wrapf(ErrInvalidDataFormat, "truncated record %d", len(ps)+1)
			}
			return nil, err
		}
		p, err := newPoint(
			math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])),
			math.Float32frombits(binary.LittleEndian.Uint32(data[4:8])),
			math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", len(ps)+1)
		}
		ps.AddPoint(p)
	}
}
