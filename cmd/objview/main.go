package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/objsoup"
	"github.com/smasonuk/objsoup/view"
)

var (
	faceColor    = color.RGBA{R: 200, G: 120, B: 60, A: 255}
	outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	background   = color.RGBA{R: 30, G: 34, B: 40, A: 255}
)

type Game struct {
	mesh     *objsoup.Mesh
	tree     *view.Tree
	camera   *view.Camera
	light    view.Light
	batcher  polygonBatcher
	outlines bool

	width, height int
	lastX, lastY  int
	dragged       bool
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragged {
		x, y := ebiten.CursorPosition()
		g.camera.Drag(float32(x-g.lastX)/200.0, float32(y-g.lastY)/200.0)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragged = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			g.camera.Zoom(0.9)
		} else {
			g.camera.Zoom(1.1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.outlines = !g.outlines
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	var polys []view.Polygon
	if g.tree != nil {
		polys = g.tree.Project(g.camera, g.width, g.height, g.light)
	} else {
		polys = view.Project(g.mesh, g.camera, g.width, g.height, g.light)
	}
	for _, p := range polys {
		if g.batcher.full() {
			g.batcher.flush(screen)
		}
		g.batcher.addTriangle(p, shadeColor(faceColor, p.Shade))
	}
	g.batcher.flush(screen)

	if g.outlines {
		for _, p := range polys {
			drawPolygonOutline(screen, p, 1, outlineColor)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("triangles: %d  visible: %d  fps: %.0f\ndrag to orbit, wheel to zoom, O for outlines",
		g.mesh.TriangleCount(), len(polys), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func loadMesh(path string, format objsoup.Format) (*objsoup.Mesh, error) {
	if strings.EqualFold(filepath.Ext(path), ".dxf") {
		return objsoup.LoadDXFMesh(path)
	}
	return objsoup.LoadMesh(path, objsoup.WithFormat(format))
}

func saveMesh(m *objsoup.Mesh, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".dxf") {
		return m.SaveDXF(path)
	}
	return m.SaveOBJ(path)
}

// fitMesh centres m on the origin and scales its largest extent to size.
func fitMesh(m *objsoup.Mesh, size float32) {
	m.Centre()
	x, y, z := m.Extents()
	largest := max(x, y, z)
	if largest > 0 {
		m.Scale(size / largest)
	}
}

func main() {
	format := flag.String("format", "legacy", "line prefix rule: legacy or strict")
	fit := flag.Float64("fit", 2, "scale the model so its largest extent is this size (0 keeps original size)")
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 480, "window height")
	export := flag.String("export", "", "write the loaded mesh to this .obj or .dxf file")
	stats := flag.Bool("stats", false, "print mesh statistics and exit")
	bsp := flag.Bool("bsp", false, "order faces with a BSP tree instead of a depth sort")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] model.obj\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	f, err := objsoup.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	mesh, err := loadMesh(path, f)
	if err != nil {
		log.Fatalf("Error loading %s: %v", path, err)
	}

	if *export != "" {
		if err := saveMesh(mesh, *export); err != nil {
			log.Fatalf("Error exporting %s: %v", *export, err)
		}
		log.Printf("Exported %s", *export)
	}

	if *stats {
		lo, hi := mesh.Bounds()
		fmt.Printf("triangles: %d\nvertices: %d\nindices: %d\nbounds: %v - %v\n",
			mesh.TriangleCount(), len(mesh.Vertices), len(mesh.Indices), lo, hi)
		return
	}

	var distance float32
	if *fit > 0 {
		fitMesh(mesh, float32(*fit))
		distance = float32(*fit) * 2
	} else {
		mesh.Centre()
		x, y, z := mesh.Extents()
		distance = max(x, y, z)*2 + 1
	}

	var tree *view.Tree
	if *bsp {
		log.Println("Creating BSP Tree...")
		tree = view.NewTree(mesh)
		log.Printf("BSP fragments: %d", tree.Len())
	}

	g := &Game{
		mesh:   mesh,
		tree:   tree,
		camera: view.NewCamera(distance),
		light:  view.DefaultLight(),
		width:  *width,
		height: *height,
	}

	log.Println("Initialization Complete.")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("objview - " + filepath.Base(path))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
