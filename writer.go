package objsoup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// WriteOBJ writes the mesh using only "v" and "f" lines, one "v" line per soup
// vertex. The output scans back to the same mesh in either Format.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	writer := bufio.NewWriter(w)

	fmt.Fprintf(writer, "# %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	for _, v := range m.Vertices {
		fmt.Fprintf(writer, "v %s %s %s\n", formatFloat(v.Pos[0]), formatFloat(v.Pos[1]), formatFloat(v.Pos[2]))
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		fmt.Fprintf(writer, "f %d %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1)
	}

	return writer.Flush()
}

func (m *Mesh) SaveOBJ(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create OBJ file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := m.WriteOBJ(file); err != nil {
		return fmt.Errorf("error writing OBJ file %s: %w", fileName, err)
	}
	return file.Close()
}

// WriteDXF writes every triangle as a 3DFACE entity whose fourth corner
// repeats the third.
func (m *Mesh) WriteDXF(w io.Writer) error {
	writer := bufio.NewWriter(w)

	writePair := func(code int, value string) {
		_, _ = fmt.Fprintf(writer, "%d\n%s\n", code, value)
	}
	writeCorner := func(corner int, p mgl32.Vec3) {
		writePair(10+corner, formatFloat(p[0]))
		writePair(20+corner, formatFloat(p[1]))
		writePair(30+corner, formatFloat(p[2]))
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")

	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	for _, tri := range m.Triangles() {
		writePair(0, "3DFACE")
		writePair(8, "0") // layer
		writeCorner(0, tri.Verts[0])
		writeCorner(1, tri.Verts[1])
		writeCorner(2, tri.Verts[2])
		writeCorner(3, tri.Verts[2])
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")

	return writer.Flush()
}

func (m *Mesh) SaveDXF(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create DXF file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := m.WriteDXF(file); err != nil {
		return fmt.Errorf("error writing DXF file %s: %w", fileName, err)
	}
	return file.Close()
}
