package objsoup

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

type Triangle struct {
	Verts  [3]mgl32.Vec3
	Normal mgl32.Vec3
}

// NewTriangle keeps the winding it is given. The normal is the normalised
// cross product of (v1-v0) and (v2-v0); for a zero-area triangle it is NaN.
func NewTriangle(v0, v1, v2 mgl32.Vec3) Triangle {
	return Triangle{
		Verts:  [3]mgl32.Vec3{v0, v1, v2},
		Normal: v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(),
	}
}

// Degenerate reports whether the triangle has no usable normal.
func (t Triangle) Degenerate() bool {
	for _, c := range t.Normal {
		if math.IsNaN(float64(c)) {
			return true
		}
	}
	return false
}

// TriangleIdentity is the conversion for callers that want Triangle itself.
// Every loader takes a conversion func(Triangle) T so that one scan can feed
// any record type.
func TriangleIdentity(t Triangle) Triangle { return t }

// Resolve turns every face in the tables into a record, in face order.
func Resolve[T any](tables *Tables, conv func(Triangle) T) []T {
	out := make([]T, 0, len(tables.Faces))
	for _, f := range tables.Faces {
		out = append(out, conv(NewTriangle(f[0], f[1], f[2])))
	}
	return out
}

func ParseTriangles[T any](src []byte, conv func(Triangle) T, opts ...Option) ([]T, error) {
	tables, err := Scan(src, opts...)
	if err != nil {
		return nil, err
	}
	return Resolve(tables, conv), nil
}

// ReadTriangles reads r to the end before scanning.
func ReadTriangles[T any](r io.Reader, conv func(Triangle) T, opts ...Option) ([]T, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, &ResourceError{Path: buildOptions(opts).name, Err: err}
	}
	return ParseTriangles(buf.Bytes(), conv, opts...)
}

// LoadTriangles reads the whole file at path into memory and scans it.
func LoadTriangles[T any](path string, conv func(Triangle) T, opts ...Option) ([]T, error) {
	Logger.Printf("Reading geometry file %s", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}

	// the path names the resource unless the caller chose another name
	opts = append([]Option{WithName(path)}, opts...)
	tables, err := Scan(raw, opts...)
	if err != nil {
		return nil, err
	}
	Logger.Printf("Loaded %s: %d positions, %d faces", path, len(tables.Positions), len(tables.Faces))
	return Resolve(tables, conv), nil
}
