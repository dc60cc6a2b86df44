// cmd/map_viewer_raylib/main.go
package main

import (
	"go-hexgrid/internal/config"
	"go-hexgrid/pkg/hexmap"
	"go-hexgrid/pkg/hexmesh"
	"go-hexgrid/pkg/hexstore"

	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// column is one prebuilt hex prism of the heightmap.
type column struct {
	mesh   *hexmesh.Mesh
	height float32
	color  rl.Color
}

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

func heightColor(t float32) rl.Color {
	water := rl.NewColor(50, 90, 160, 255)
	grass := rl.NewColor(90, 150, 90, 255)
	rock := rl.NewColor(140, 130, 120, 255)
	if t < 0.5 {
		return ColorLerp(water, grass, t*2)
	}
	return ColorLerp(grass, rock, (t-0.5)*2)
}

func buildColumns() *hexstore.HexagonalMap[column] {
	layout := hexmap.NewLayout(hexmap.OrientationFlat, hexmap.Point{}, config.ViewerHexSize)
	noise := opensimplex.NewNormalized(config.NoiseSeed)
	return hexstore.NewHexagonalMap(hexmap.HexZero, config.ViewerRadius, func(h hexmap.Hex) column {
		p := layout.HexToPixel(h)
		t := float32(noise.Eval2(p.X*config.NoiseFrequency, p.Y*config.NoiseFrequency))
		height := 0.5 + t*config.ColumnMaxHeight
		builder := hexmesh.ColumnBuilder{Layout: layout, Height: height}
		return column{
			mesh:   builder.Build(h),
			height: height,
			color:  heightColor(t),
		}
	})
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Hex Heightmap Viewer | Q/E - Rotate, Mouse Wheel - Change Angle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(config.CameraDistance, config.CameraHeight, config.CameraDistance)
	topDownPos := rl.NewVector3(0, config.CameraDistance*2, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.3)

	columns := buildColumns()

	for !rl.WindowShouldClose() {
		orbitStep := rl.GetFrameTime() * config.CameraOrbitSpeed
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -orbitStep)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, orbitStep)
		}

		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		columns.Each(func(h hexmap.Hex, c column) {
			// Туман по расстоянию до камеры
			pos := rl.NewVector3(c.mesh.Positions[0].X, c.height, c.mesh.Positions[0].Z)
			distance := rl.Vector3Distance(camera.Position, pos)
			fogStart := float32(config.CameraDistance * 1.5)
			fogEnd := float32(config.CameraDistance * 4)
			fogFactor := (distance - fogStart) / (fogEnd - fogStart)
			if fogFactor < 0 {
				fogFactor = 0
			}
			if fogFactor > 1 {
				fogFactor = 1
			}
			finalColor := ColorLerp(c.color, backgroundColor, fogFactor)

			for i := 0; i < c.mesh.TriangleCount(); i++ {
				a, b, cc := c.mesh.Triangle(i)
				rl.DrawTriangle3D(
					rl.NewVector3(a.X, a.Y, a.Z),
					rl.NewVector3(cc.X, cc.Y, cc.Z),
					rl.NewVector3(b.X, b.Y, b.Z),
					finalColor,
				)
			}
		})

		rl.EndMode3D()

		rl.DrawText("Use Q/E to rotate and Mouse Wheel to change angle", 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
