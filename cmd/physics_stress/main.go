// Stress test timing the brute-force collision pass with and without response
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	iterations := flag.Int("n", 10, "iterations per object count")
	boxes := flag.Float64("boxes", 0.5, "fraction of objects that are boxes")
	only := flag.String("only", "", "spawn a single shape (sphere or box) instead of a mix")
	flag.Parse()

	fraction, err := boxFraction(*only, *boxes)
	if err != nil {
		log.Fatalf("Bad -only: %v", err)
	}

	// Test various object counts
	testCounts := []int{100, 250, 500, 1000, 2000, 4000}

	for _, count := range testCounts {
		testCollisionPass(count, *iterations, fraction)
	}
}

// boxFraction resolves the -only flag. An empty name keeps the mix.
func boxFraction(only string, mix float64) (float64, error) {
	if only == "" {
		return mix, nil
	}
	shape, err := physics.ParseShapeType(only)
	if err != nil {
		return 0, err
	}
	switch shape {
	case physics.ShapeSphere:
		return 0, nil
	case physics.ShapeBox:
		return 1, nil
	}
	return 0, fmt.Errorf("%s cannot be spawned", shape)
}

func newWorld(count int, boxFraction float64) *physics.World {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0

	w := physics.NewWorld(rl.Vector3{}, 0)
	for i := 0; i < count; i++ {
		pos := rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		size := 0.5 + rng.Float32()*0.5 // 0.5 to 1.0

		var (
			obj physics.Object
			err error
		)
		if rng.Float64() < boxFraction {
			obj, err = physics.NewBox(pos, rl.Vector3{}, 1, rl.Vector3{X: size, Y: size, Z: size}, rl.Blue, false)
		} else {
			obj, err = physics.NewSphere(pos, rl.Vector3{}, 1, size, rl.Red, false)
		}
		if err != nil {
			log.Fatalf("Failed to create object: %v", err)
		}
		w.AddObject(obj)
	}
	w.AddGround(physics.NewPlane(rl.Vector3{Y: 1}, -spawnSize/2, false))
	return w
}

func testCollisionPass(count, iterations int, boxFraction float64) {
	// Overlap tests only: bodies never move, so every iteration sees the same pairs
	w := newWorld(count, boxFraction)
	w.Properties.CollisionResponse = false
	w.CheckCollisions() // warm up

	overlapStart := time.Now()
	var pairs int
	for i := 0; i < iterations; i++ {
		pairs = w.CheckCollisions()
	}
	overlapTime := time.Since(overlapStart) / time.Duration(iterations)

	// Full response: fresh world each run so the separation doesn't pile up
	var resolveTime time.Duration
	var resolved int
	for i := 0; i < iterations; i++ {
		w := newWorld(count, boxFraction)
		start := time.Now()
		resolved = w.CheckCollisions()
		resolveTime += time.Since(start)
	}
	resolveTime /= time.Duration(iterations)

	fmt.Printf("%5d objects: overlap %10v (%5d pairs) | resolve %10v (%5d pairs) | %.2fx\n",
		count, overlapTime.Round(time.Microsecond), pairs,
		resolveTime.Round(time.Microsecond), resolved,
		float64(resolveTime)/float64(overlapTime))
}
