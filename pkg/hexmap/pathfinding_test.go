// pkg/hexmap/pathfinding_test.go
package hexmap

import (
	"testing"
)

func uniformCost(walls map[Hex]bool) CostFn {
	return func(from, to Hex) (uint32, bool) {
		if walls[to] {
			return 0, false
		}
		if HexZero.Distance(to) > 5 {
			return 0, false
		}
		return 1, true
	}
}

func TestAStarStraightLine(t *testing.T) {
	path, ok := AStar(Hex{0, 0}, Hex{3, 0}, 0, uniformCost(nil))
	if !ok {
		t.Fatal("Expected path to be found")
	}
	if len(path) != 4 {
		t.Errorf("Expected path length to be 4, got %d", len(path))
	}
	if path[0] != (Hex{0, 0}) || path[len(path)-1] != (Hex{3, 0}) {
		t.Errorf("Expected path endpoints (0, 0) and (3, 0), got %v and %v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].Distance(path[i]) != 1 {
			t.Errorf("Expected adjacent steps, got %v -> %v", path[i-1], path[i])
		}
	}
}

func TestAStarDetour(t *testing.T) {
	walls := map[Hex]bool{
		{1, -1}: true,
		{1, 0}:  true,
		{1, 1}:  true,
	}
	path, ok := AStar(Hex{0, 0}, Hex{2, 0}, 0, uniformCost(walls))
	if !ok {
		t.Fatal("Expected path around the wall")
	}
	if len(path) != 6 {
		t.Errorf("Expected detour length to be 6, got %d", len(path))
	}
	for _, h := range path {
		if walls[h] {
			t.Errorf("Expected path to avoid wall %v", h)
		}
	}
}

func TestAStarNoPath(t *testing.T) {
	goal := Hex{3, 0}
	walls := map[Hex]bool{}
	for _, n := range goal.AllNeighbors() {
		walls[n] = true
	}
	if _, ok := AStar(Hex{0, 0}, goal, 0, uniformCost(walls)); ok {
		t.Error("Expected no path to a sealed goal")
	}
}

func TestAStarExpansionCap(t *testing.T) {
	if _, ok := AStar(Hex{0, 0}, Hex{5, 0}, 2, uniformCost(nil)); ok {
		t.Error("Expected search to give up under the expansion cap")
	}
	if _, ok := AStar(Hex{0, 0}, Hex{5, 0}, 4096, uniformCost(nil)); !ok {
		t.Error("Expected search to succeed under a generous cap")
	}
}

func TestAStarStartIsGoal(t *testing.T) {
	path, ok := AStar(Hex{2, -1}, Hex{2, -1}, 0, uniformCost(nil))
	if !ok || len(path) != 1 || path[0] != (Hex{2, -1}) {
		t.Errorf("Expected single-hex path, got %v, %v", path, ok)
	}
}

func TestAStarWeightedCost(t *testing.T) {
	// Stepping onto the r = 0 axis away from the endpoints costs 10,
	// so the cheapest route dips below the axis.
	cost := func(from, to Hex) (uint32, bool) {
		if HexZero.Distance(to) > 5 {
			return 0, false
		}
		if to.R == 0 && to.Q > 0 && to.Q < 3 {
			return 10, true
		}
		return 1, true
	}
	path, ok := AStar(Hex{0, 0}, Hex{3, 0}, 0, cost)
	if !ok {
		t.Fatal("Expected path to be found")
	}
	for _, h := range path[1 : len(path)-1] {
		if h.R == 0 {
			t.Errorf("Expected path to avoid the expensive axis, visited %v", h)
		}
	}
}
