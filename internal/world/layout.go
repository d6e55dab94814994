package world

import (
	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var layoutColors = []rl.Color{
	rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
	rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
}

// InitializeCubes lays out a rows x cols grid of cubes with full side size at
// the given height. Each cube's start position is its grid slot.
func InitializeCubes(rows, cols int, spacing, size, height float32) ([]*BoxModel, error) {
	half := size / 2
	cubes := make([]*BoxModel, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cube, err := NewBoxModel(rl.Vector3Zero(), rl.Vector3Zero(), 1, rl.Vector3{X: half, Y: half, Z: half}, layoutColors[(row*cols+col)%len(layoutColors)])
			if err != nil {
				return nil, err
			}
			cube.SetPosition(rl.Vector3{
				X: float32(col) * (spacing + size),
				Y: height,
				Z: float32(row) * (spacing + size),
			})
			cube.SetCurrentPosAsOriginalPos()
			cubes = append(cubes, cube)
		}
	}
	return cubes, nil
}

// ballOffsets are where InitializeBalls drops its three balls.
var ballOffsets = []rl.Vector3{
	{X: 3, Y: 5, Z: 3},
	{X: -3, Y: 7, Z: 3},
	{X: 0, Y: 4, Z: 3},
}

// InitializeBalls creates three resting balls at fixed offsets from the origin.
func InitializeBalls(radius, mass float32) ([]*SphereModel, error) {
	balls := make([]*SphereModel, 0, len(ballOffsets))
	for i, offset := range ballOffsets {
		ball, err := NewSphereModel(rl.Vector3Zero(), rl.Vector3Zero(), mass, radius, layoutColors[i%len(layoutColors)])
		if err != nil {
			return nil, err
		}
		ball.Translation(offset)
		ball.SetCurrentPosAsOriginalPos()
		balls = append(balls, ball)
	}
	return balls, nil
}

// CalculateSceneBounds is the union of the models' bounding boxes.
func CalculateSceneBounds[M Model](models []M) physics.AABB {
	bounds := physics.EmptyAABB()
	for _, m := range models {
		bounds.ExpandToInclude(m.Bounds())
	}
	return bounds
}

// FitToScene moves m so it is centred over bounds in X and Z and rests on
// top of them.
func FitToScene(m Model, bounds physics.AABB) {
	if bounds.IsEmpty() {
		return
	}
	m.Translation(fitMove(m.Bounds(), bounds))
}

// FitAllToScene moves models together, as one group, onto bounds.
func FitAllToScene[M Model](models []M, bounds physics.AABB) {
	group := CalculateSceneBounds(models)
	if bounds.IsEmpty() || group.IsEmpty() {
		return
	}
	move := fitMove(group, bounds)
	for _, m := range models {
		m.Translation(move)
	}
}

func fitMove(box, bounds physics.AABB) rl.Vector3 {
	move := rl.Vector3Subtract(bounds.Center(), box.Center())
	move.Y = bounds.Max.Y - box.Min.Y
	return move
}

// DemoScene is the built-in scene: a static slab of cubes over a ground
// plane with three balls fitted above it to drop onto the slab.
func DemoScene() *SceneFile {
	return &SceneFile{
		Name: "Drop",
		Grounds: []ObjectDef{
			{Name: "Ground", Tags: []string{"ground"}, Shape: "plane", Normal: [3]float32{0, 1, 0}, Color: "LightGray"},
		},
		Layouts: []LayoutDef{
			{Type: "cubes", Rows: DefaultGridRows, Cols: DefaultGridCols, Size: DefaultCubeSize, Height: DefaultGridHeight, Ground: true},
			{Type: "balls", Size: 1, Fit: true},
		},
	}
}
