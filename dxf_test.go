package objsoup

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dxf(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestReadDXFQuadSplitsInTwo(t *testing.T) {
	src := dxf(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "3DFACE",
		"8", "0",
		"10", "0", "20", "0", "30", "0",
		"11", "1", "21", "0", "31", "0",
		"12", "1", "22", "1", "32", "0",
		"13", "0", "23", "1", "33", "0",
		"0", "ENDSEC",
		"0", "EOF",
	)

	tris, err := ReadDXFTriangles(strings.NewReader(src), TriangleIdentity)
	require.NoError(t, err)
	require.Len(t, tris, 2)

	assert.Equal(t, [3]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, tris[0].Verts)
	assert.Equal(t, [3]mgl32.Vec3{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}, tris[1].Verts)
	for _, tri := range tris {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, tri.Normal)
	}
}

func TestReadDXFThreeCornerFace(t *testing.T) {
	src := dxf(
		"0", "3DFACE",
		"10", "1", "20", "1", "30", "1",
		"11", "2", "21", "1", "31", "1",
		"12", "1", "22", "2", "32", "1",
		"0", "EOF",
	)

	tris, err := ReadDXFTriangles(strings.NewReader(src), TriangleIdentity)
	require.NoError(t, err)
	require.Len(t, tris, 1)
	assert.Equal(t, [3]mgl32.Vec3{{1, 1, 1}, {2, 1, 1}, {1, 2, 1}}, tris[0].Verts)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, tris[0].Normal)
}

func TestReadDXFSkipsOtherEntities(t *testing.T) {
	src := dxf(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "0",
		"10", "5", "20", "5", "30", "5",
		"11", "6", "21", "6", "31", "6",
		"0", "3DFACE",
		"10", "0", "20", "0", "30", "0",
		"11", "0", "21", "1", "31", "0",
		"12", "0", "22", "0", "32", "1",
		"13", "0", "23", "0", "33", "1",
		"0", "ENDSEC",
	)

	tris, err := ReadDXFTriangles(strings.NewReader(src), CollisionTriFromTriangle)
	require.NoError(t, err)
	require.Len(t, tris, 1)
	assert.InDelta(t, 1.0, tris[0].Normal[0], 1e-9)
}

func TestReadDXFMalformed(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		token  string
		line   int
		offset int
		cause  error
	}{
		{
			name:   "Bad coordinate",
			input:  dxf("0", "3DFACE", "10", "zero"),
			token:  "zero",
			line:   4,
			offset: 12,
		},
		{
			name:   "Bad coordinate with CRLF line endings",
			input:  "0\r\n3DFACE\r\n10\r\nzero\r\n",
			token:  "zero",
			line:   4,
			offset: 15,
		},
		{
			name:   "Bad group code",
			input:  dxf("0", "3DFACE", "ten", "0"),
			token:  "ten",
			line:   3,
			offset: 9,
		},
		{
			name:   "Group code without a value",
			input:  dxf("0", "3DFACE", "10"),
			token:  "10",
			line:   3,
			offset: 9,
			cause:  ErrTruncated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tris, err := ReadDXFTriangles(strings.NewReader(tc.input), TriangleIdentity, WithName("part.dxf"))
			assert.Nil(t, tris)
			require.ErrorIs(t, err, ErrMalformedToken)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}

			var tokErr *TokenError
			require.ErrorAs(t, err, &tokErr)
			assert.Equal(t, tc.token, tokErr.Token)
			assert.Equal(t, tc.line, tokErr.Line)
			assert.Equal(t, tc.offset, tokErr.Offset)
			assert.Equal(t, "part.dxf", tokErr.Resource)
		})
	}
}
