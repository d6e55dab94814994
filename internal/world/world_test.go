package world

import (
	"path/filepath"
	"testing"

	"rigidsim/internal/engine"
	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCreatesNode(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	m, err := NewSphereModel(vec(0, 0, 0), vec(60, 0, 0), 1, 1, rl.Red)
	require.NoError(t, err)

	n := w.Add("ball", []string{"ball"}, m)

	assert.Same(t, n, w.NodeOf(m))
	assert.Same(t, n, w.Scene.FindByName("ball"))
	assert.Equal(t, Model(m), ModelOf(n))
	assert.Equal(t, 1, w.Physics.NumObjects())

	require.True(t, w.Update(physics.DefaultTimeStep))
	assertVec(t, m.Position(), n.Transform.Position, "node follows the body")
	assert.InDelta(t, 1, n.Transform.Position.X, 1e-5)
}

func TestContactsReachNodes(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	w.Physics.Properties.CollisionResponse = false
	a := newSphereModel(t, vec(0, 0, 0), 1)
	b := newSphereModel(t, vec(1.5, 0, 0), 1)
	na := w.Add("a", nil, a)
	nb := w.Add("b", nil, b)

	require.True(t, w.Update(physics.DefaultTimeStep))

	fa := engine.GetComponent[*ContactFlash](na)
	fb := engine.GetComponent[*ContactFlash](nb)
	require.NotNil(t, fa)
	require.NotNil(t, fb)
	assert.Equal(t, 1, fa.Hits)
	assert.Equal(t, 1, fb.Touching)
	assert.True(t, fa.Lit())

	b.SetPosition(vec(10, 0, 0))
	require.True(t, w.Update(physics.DefaultTimeStep))
	assert.Equal(t, 0, fa.Touching)
	assert.Equal(t, 0, fb.Touching)
	assert.Equal(t, 1, fb.Hits)

	for i := 0; i < 30; i++ {
		w.Update(physics.DefaultTimeStep)
	}
	assert.False(t, fa.Lit())
}

func TestGroundContactsReachNodes(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	ball := newSphereModel(t, vec(0, 0.5, 0), 1)
	nb := w.Add("ball", nil, ball)
	nf := w.AddGround("floor", nil, NewPlaneModel(vec(0, 1, 0), 0, rl.Gray))

	w.Update(physics.DefaultTimeStep)

	assert.Equal(t, 1, engine.GetComponent[*ContactFlash](nb).Hits)
	assert.Equal(t, 1, engine.GetComponent[*ContactFlash](nf).Hits)
	assert.Len(t, w.Grounds(), 1)
}

func TestRemove(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	m := newSphereModel(t, vec(0, 0, 0), 1)
	w.Add("ball", nil, m)

	assert.True(t, w.Remove(m))
	assert.False(t, w.Remove(m))
	assert.Empty(t, w.Models())
	assert.Nil(t, w.NodeOf(m))
	assert.Nil(t, w.Scene.FindByName("ball"))
	assert.Equal(t, 0, w.Physics.NumObjects())
}

func TestResetAndClear(t *testing.T) {
	w := New(vec(0, -10, 0), 0)
	m := newSphereModel(t, vec(0, 10, 0), 1)
	n := w.Add("ball", nil, m)

	for i := 0; i < 10; i++ {
		w.Update(physics.DefaultTimeStep)
	}
	require.Less(t, m.Position().Y, float32(10))

	w.Reset()
	assert.Equal(t, vec(0, 10, 0), m.Position())
	assertVec(t, vec(0, 10, 0), m.Bounds().Center())
	assert.Equal(t, vec(0, 10, 0), n.Transform.Position)

	w.Clear()
	assert.Empty(t, w.Models())
	assert.Empty(t, w.Scene.Nodes)
	assert.False(t, w.Physics.Properties.Gravity)
	assert.False(t, w.Physics.Properties.Collisions)
	assert.True(t, w.Bounds.IsEmpty())
}

func TestApplyLayouts(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	loaded := 0
	w.OnLoaded.AddListener(func() { loaded++ })

	err := w.Apply(&SceneFile{
		Layouts: []LayoutDef{
			{Type: "cubes", Rows: 2, Cols: 2, Ground: true},
			{Type: "balls", Fit: true},
		},
	})
	require.NoError(t, err)

	assert.Len(t, w.Grounds(), 4)
	assert.Len(t, w.Models(), 3)
	assert.Equal(t, 1, loaded)
	require.False(t, w.Bounds.IsEmpty())
	assertVec(t, vec(-1, 49, -1), w.Bounds.Min)
	assertVec(t, vec(3, 51, 3), w.Bounds.Max)

	for _, m := range w.Models() {
		assert.GreaterOrEqual(t, m.Bounds().Min.Y, w.Bounds.Max.Y-1e-4, "balls rest above the cubes")
		assert.Equal(t, m.Position(), m.StartPosition())
	}
	assert.NotNil(t, w.Scene.FindByName("Cube_3"))
	assert.Len(t, w.Scene.FindByTag("ball"), 3)
}

func TestApplyKeepsWorldOnError(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	w.Add("ball", nil, newSphereModel(t, vec(0, 0, 0), 1))
	w.Physics.Properties.CollisionResponse = false

	err := w.Apply(&SceneFile{Objects: []ObjectDef{{Name: "bad", Shape: "torus"}}})
	assert.ErrorIs(t, err, ErrUnknownShape)
	assert.Len(t, w.Models(), 1)

	err = w.Apply(&SceneFile{Layouts: []LayoutDef{{Type: "pyramid"}}})
	assert.Error(t, err)
	assert.Len(t, w.Models(), 1)

	require.NoError(t, w.Apply(&SceneFile{Gravity: &[3]float32{0, -5, 0}}))
	assert.Empty(t, w.Models())
	assert.False(t, w.Physics.Properties.CollisionResponse, "toggles survive a load")
	assert.True(t, w.Physics.Properties.Gravity)
	assert.Equal(t, vec(0, -5, 0), w.Physics.Gravity)
}

func TestSaveAndLoadScene(t *testing.T) {
	for _, name := range []string{"scene.json", "scene.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			src := New(vec(0, -2, 0), 0)
			ball, err := NewSphereModel(vec(1, 2, 3), vec(0, 1, 0), 2, 0.5, rl.Green)
			require.NoError(t, err)
			src.Add("ball", []string{"ball"}, ball)
			src.AddGround("floor", nil, NewPlaneModel(vec(0, 1, 0), -1, rl.Gray))
			src.Update(physics.DefaultTimeStep)
			require.NoError(t, src.SaveScene(path))

			dst := New(vec(0, 0, 0), 0)
			require.NoError(t, dst.LoadScene(path))

			assert.Equal(t, vec(0, -2, 0), dst.Physics.Gravity)
			require.Len(t, dst.Models(), 1)
			require.Len(t, dst.Grounds(), 1)

			got := dst.Models()[0].(*SphereModel)
			assert.Equal(t, vec(1, 2, 3), got.Position(), "saved from the start state")
			assert.Equal(t, vec(0, 1, 0), got.Velocity())
			assert.Equal(t, float32(2), got.Mass())
			assert.Equal(t, rl.Green, got.Color)
			assert.Equal(t, []string{"ball"}, dst.NodeOf(got).Tags)

			floor := dst.Grounds()[0].(*PlaneModel)
			assert.Equal(t, float32(-1), floor.Distance())
			assert.True(t, floor.Body().Data.IsStatic)
		})
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	w := New(vec(0, 0, 0), 0)
	assert.Error(t, w.LoadScene(filepath.Join(t.TempDir(), "missing.json")))
}

func TestApplyDemoScene(t *testing.T) {
	w := New(vec(0, -2, 0), 0)
	require.NoError(t, w.Apply(DemoScene()))

	assert.Len(t, w.Models(), len(ballOffsets))
	require.Len(t, w.Grounds(), 1+DefaultGridRows*DefaultGridCols)
	assert.Equal(t, "Drop", w.Scene.Name)
	assert.Len(t, w.Scene.FindByTag("ball"), 3)

	for _, n := range w.Scene.FindByTag("ball") {
		ball := ModelOf(n)
		require.NotNil(t, ball)
		assert.GreaterOrEqual(t, ball.Bounds().Min.Y, w.Bounds.Max.Y-1e-4, "balls start above the cubes")
	}

	cubes := w.Scene.FindByTag("cube")
	require.Len(t, cubes, DefaultGridRows*DefaultGridCols)
	for _, n := range cubes {
		assert.Contains(t, w.Grounds(), ModelOf(n), "the slab is ground")
	}

	for i := 0; i < 200; i++ {
		w.Physics.Step(0.05)
	}
	for _, n := range cubes {
		cube := ModelOf(n)
		assert.Equal(t, float32(DefaultGridHeight), cube.Position().Y, "%s moved", n.Name)
		assert.True(t, cube.Body().Data.OnGround)
	}
}
