package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/objsoup/view"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func shadeColor(base color.RGBA, shade float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(base.R) * shade),
		G: uint8(float32(base.G) * shade),
		B: uint8(float32(base.B) * shade),
		A: base.A,
	}
}

// polygonBatcher collects filled triangles so a frame is one DrawTriangles
// call instead of one per polygon.
type polygonBatcher struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *polygonBatcher) addTriangle(p view.Polygon, clr color.RGBA) {
	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	base := uint16(len(b.vertices))
	for i := 0; i < 3; i++ {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   p.X[i],
			DstY:   p.Y[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	b.indices = append(b.indices, base, base+1, base+2)
}

// full reports whether another triangle would overflow the uint16 indices.
func (b *polygonBatcher) full() bool {
	return len(b.vertices)+3 > 0xffff
}

func (b *polygonBatcher) flush(screen *ebiten.Image) {
	if len(b.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func drawPolygonOutline(screen *ebiten.Image, p view.Polygon, strokeWidth float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(p.X[0], p.Y[0])
	path.LineTo(p.X[1], p.Y[1])
	path.LineTo(p.X[2], p.Y[2])
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width: strokeWidth,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
