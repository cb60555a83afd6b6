package cloud

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"skelobj/pkg/skel"
)

var testPoints = [][4]float32{{0, 0, 0, 1}, {1.5, 1, 1, 1}, {-10, 10, 10, 0.5}}

func encodeBin(t *testing.T) []byte {
	var buf bytes.Buffer
	for _, p := range testPoints {
		if err := binary.Write(&buf, binary.LittleEndian, p); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func encodePcd(t *testing.T) []byte {
	var buf bytes.Buffer
	buf.WriteString("VERSION 0.7\n")
	buf.WriteString("FIELDS x y z intensity\n")
	buf.WriteString("SIZE 4 4 4 4\n")
	buf.WriteString("TYPE F F F F\n")
	buf.WriteString("COUNT 1 1 1 1\n")
	buf.WriteString(fmt.Sprintf("WIDTH %d\n", len(testPoints)))
	buf.WriteString("HEIGHT 1\n")
	buf.WriteString("VIEWPOINT 0 0 0 1 0 0 0\n")
	buf.WriteString(fmt.Sprintf("POINTS %d\n", len(testPoints)))
	buf.WriteString("DATA binary\n")
	buf.Write(encodeBin(t))
	return buf.Bytes()
}

func checkPoints(t *testing.T, ps skel.PointSet) {
	if len(ps) != len(testPoints) {
		t.Fatalf("expected %d points, got %d", len(testPoints), len(ps))
	}
	for i, p := range testPoints {
		if ps[i].X != float64(p[0]) || ps[i].Y != float64(p[1]) || ps[i].Z != float64(p[2]) {
			t.Errorf("point %d: expected %v, got %v", i, p, ps[i])
		}
	}
	if ps[1].Text != "1.5 1 1" {
		t.Errorf("unexpected text %q", ps[1].Text)
	}
}

func TestDecodeBin(t *testing.T) {
	ps, err := DecodeBin(bytes.NewReader(encodeBin(t)))
	if err != nil {
		t.Fatal(err)
	}
	checkPoints(t, ps)

	data := encodeBin(t)
	_, err = DecodeBin(bytes.NewReader(data[:len(data)-3]))
	if !errors.Is(err, ErrInvalidDataFormat) {
		t.Errorf("expected ErrInvalidDataFormat, got %v", err)
	}
}

func TestDecodePcd(t *testing.T) {
	ps, err := DecodePcd(bytes.NewReader(encodePcd(t)))
	if err != nil {
		t.Fatal(err)
	}
	checkPoints(t, ps)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"cloud.bin": encodeBin(t),
		"cloud.PCD": encodePcd(t),
		"cloud.txt": []byte("0 0 0\n1.5 1 1\n-10 10 10\n"),
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
		ps, err := Load(path, skel.Truncate)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		checkPoints(t, ps)
	}

	if _, err := Load(filepath.Join(dir, "missing.txt"), skel.Truncate); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
