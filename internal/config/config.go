// internal/config/config.go
package config

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 26.0
	MapRadius    = 9

	ClickDebounceTime = 150 // ms

	FOVRadius      = 6
	MovementBudget = 8
	WallChance     = 0.18
	AStarCap       = 4096

	// 3D viewer
	ViewerRadius     = 18
	ViewerHexSize    = 1.0
	ColumnMaxHeight  = 6.0
	NoiseFrequency   = 0.12
	NoiseSeed        = 1337
	CameraOrbitSpeed = 1.2 // rad/s
	CameraDistance   = 34.0
	CameraHeight     = 22.0

	// shape painter
	PainterHexSize  = 14.0
	PainterImageDim = 640
)
