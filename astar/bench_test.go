package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/greedy/astar"
)

// randomMap builds a size×size map with roughly density walls, start in the
// top-left corner and goal in the bottom-right corner.
func randomMap(b *testing.B, size int, density float64) *astar.Map {
	m, err := astar.NewMap(size, size)
	if err != nil {
		b.Fatalf("NewMap failed: %v", err)
	}
	r := rand.New(rand.NewSource(42))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if r.Float64() < density {
				_ = m.SetCell(astar.Point{X: x, Y: y}, astar.Wall)
			}
		}
	}
	_ = m.SetStart(astar.Point{X: 0, Y: 0})
	_ = m.SetGoal(astar.Point{X: size - 1, Y: size - 1})

	return m
}

// BenchmarkSearch_Open measures an empty 200×200 map.
func BenchmarkSearch_Open(b *testing.B) {
	m := randomMap(b, 200, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m, astar.WithoutMarking())
	}
}

// BenchmarkSearch_Cluttered measures a 200×200 map with 25% walls.
func BenchmarkSearch_Cluttered(b *testing.B) {
	m := randomMap(b, 200, 0.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m, astar.WithoutMarking())
	}
}
