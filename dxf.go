package objsoup

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ReadDXFTriangles reads the 3DFACE entities of a DXF file. A face whose
// fourth corner differs from its third is a quad and yields two triangles; a
// face that leaves the fourth corner out is a triangle. Every other entity is
// skipped.
func ReadDXFTriangles[T any](r io.Reader, conv func(Triangle) T, opts ...Option) ([]T, error) {
	o := buildOptions(opts)
	scanner := bufio.NewScanner(r)

	var (
		out        []T
		corners    [4]mgl32.Vec3
		inFace     bool
		sawFourth  bool
		line       int
		offset     int
		nextOffset int
	)

	// track where each line starts, terminator included, so CRLF input
	// reports the same offsets as the bytes on disk
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, tok, err := bufio.ScanLines(data, atEOF)
		if tok != nil {
			offset = nextOffset
		}
		nextOffset += advance
		return advance, tok, err
	})

	tokenError := func(tok string, err error) error {
		return &TokenError{Resource: o.name, Offset: offset, Line: line, Token: tok, Err: err}
	}

	flush := func() {
		if !inFace {
			return
		}
		if !sawFourth {
			corners[3] = corners[2]
		}
		out = append(out, conv(NewTriangle(corners[0], corners[1], corners[2])))
		if corners[3] != corners[2] {
			out = append(out, conv(NewTriangle(corners[0], corners[2], corners[3])))
		}
		inFace = false
	}

	// readLine advances to the next line and returns it trimmed.
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		codeText, ok := readLine()
		if !ok {
			break
		}
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return nil, tokenError(codeText, err)
		}

		value, ok := readLine()
		if !ok {
			if scanner.Err() == nil {
				return nil, tokenError(codeText, ErrTruncated)
			}
			break
		}

		switch {
		case code == 0:
			flush()
			if value == "3DFACE" {
				inFace = true
				sawFourth = false
				corners = [4]mgl32.Vec3{}
			}
		case inFace && code >= 10 && code < 40 && code%10 < 4:
			f, err := parseCoord(value)
			if err != nil {
				return nil, tokenError(value, err)
			}
			corners[code%10][code/10-1] = f
			if code%10 == 3 {
				sawFourth = true
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ResourceError{Path: o.name, Err: err}
	}
	flush()

	return out, nil
}

func LoadDXFTriangles[T any](path string, conv func(Triangle) T, opts ...Option) ([]T, error) {
	Logger.Printf("Reading DXF file %s", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer file.Close()

	opts = append([]Option{WithName(path)}, opts...)
	out, err := ReadDXFTriangles(file, conv, opts...)
	if err != nil {
		return nil, err
	}
	Logger.Printf("Loaded %s: %d triangles", path, len(out))
	return out, nil
}

func LoadDXFMesh(path string, opts ...Option) (*Mesh, error) {
	tris, err := LoadDXFTriangles(path, TriangleIdentity, opts...)
	if err != nil {
		return nil, err
	}
	return NewMesh(tris), nil
}
