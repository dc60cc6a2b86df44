// cmd/grid_viewer/main.go
package main

import (
	"image/color"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-hexgrid/internal/config"
	"go-hexgrid/pkg/hexmap"
	"go-hexgrid/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer is the interactive grid demo. Left click moves the goal,
// right click toggles walls, F switches to field of view, M to field
// of movement, R rerolls the walls.
type Viewer struct {
	layout    hexmap.Layout
	cells     []hexmap.Hex
	inside    map[hexmap.Hex]struct{}
	walls     map[hexmap.Hex]bool
	origin    hexmap.Hex
	goal      hexmap.Hex
	path      []hexmap.Hex
	mode      int // 0 path, 1 fov, 2 movement
	renderer  *render.HexRenderer
	colors    render.GridColors
	lastClick time.Time
}

const (
	modePath = iota
	modeFOV
	modeMovement
)

func NewViewer() *Viewer {
	layout := hexmap.NewLayout(
		hexmap.OrientationPointy,
		hexmap.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		config.HexSize,
	)
	cells := hexmap.HexZero.Range(config.MapRadius)
	inside := make(map[hexmap.Hex]struct{}, len(cells))
	for _, c := range cells {
		inside[c] = struct{}{}
	}
	colors := render.DefaultGridColors()
	v := &Viewer{
		layout:   layout,
		cells:    cells,
		inside:   inside,
		origin:   hexmap.HexZero,
		goal:     hexmap.NewHex(config.MapRadius/2, config.MapRadius/3),
		renderer: render.NewHexRenderer(layout, cells, colors, config.ScreenWidth, config.ScreenHeight, true),
		colors:   colors,
	}
	v.rollWalls()
	return v
}

func (v *Viewer) rollWalls() {
	v.walls = make(map[hexmap.Hex]bool)
	for _, c := range v.cells {
		if c != v.origin && c != v.goal && rand.Float64() < config.WallChance {
			v.walls[c] = true
		}
	}
	v.repath()
}

func (v *Viewer) passable(h hexmap.Hex) bool {
	if _, ok := v.inside[h]; !ok {
		return false
	}
	return !v.walls[h]
}

func (v *Viewer) repath() {
	v.path, _ = hexmap.AStar(v.origin, v.goal, config.AStarCap, func(_, to hexmap.Hex) (uint32, bool) {
		return 1, v.passable(to)
	})
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.mode = modeFOV
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.mode = modeMovement
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.mode = modePath
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.rollWalls()
	}

	if time.Since(v.lastClick) < config.ClickDebounceTime*time.Millisecond {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	cursor := v.layout.PixelToHex(hexmap.Point{X: float64(mx), Y: float64(my)})
	if _, ok := v.inside[cursor]; !ok {
		return nil
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.lastClick = time.Now()
		v.goal = cursor
		delete(v.walls, cursor)
		v.repath()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		v.lastClick = time.Now()
		if cursor != v.origin && cursor != v.goal {
			v.walls[cursor] = !v.walls[cursor]
			v.repath()
		}
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	overlay := make(map[hexmap.Hex]color.RGBA, len(v.walls)+len(v.path)+2)
	for wall, on := range v.walls {
		if on {
			overlay[wall] = v.colors.WallColor
		}
	}
	switch v.mode {
	case modeFOV:
		visible := hexmap.RangeFOV(v.origin, config.FOVRadius, func(h hexmap.Hex) bool {
			return v.walls[h]
		})
		for _, h := range visible {
			overlay[h] = v.colors.VisibleColor
		}
	case modeMovement:
		reachable := hexmap.FieldOfMovement(v.origin, config.MovementBudget, func(h hexmap.Hex) (uint32, bool) {
			return 1, v.passable(h)
		})
		for _, h := range reachable {
			overlay[h] = v.colors.VisibleColor
		}
	default:
		for _, h := range v.path {
			overlay[h] = v.colors.PathColor
		}
		overlay[v.goal] = v.colors.TargetColor
	}
	overlay[v.origin] = v.colors.OriginColor

	v.renderer.Draw(screen, overlay)
	ebitenutil.DebugPrint(screen, "LMB goal | RMB wall | P path | F fov | M movement | R reroll")
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	rand.Seed(time.Now().UnixNano())
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Grid Viewer")
	if err := ebiten.RunGame(NewViewer()); err != nil {
		log.Fatal(err)
	}
}
