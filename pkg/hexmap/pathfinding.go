// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// CostFn prices the move between two adjacent hexes. ok=false marks the
// move impassable.
type CostFn func(from, to Hex) (cost uint32, ok bool)

// AStar находит кратчайший путь от start до goal.
// maxExpansions caps how many nodes may be popped before giving up;
// zero or negative means no cap. The returned path includes both
// endpoints; ok is false when no path was found within the cap.
func AStar(start, goal Hex, maxExpansions int, cost CostFn) ([]Hex, bool) {
	if start == goal {
		return []Hex{start}, true
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Hex: start, Cost: 0, Seq: seq, Parent: nil})
	costSoFar := map[Hex]uint32{start: 0}
	expansions := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Hex == goal {
			return reconstructPath(current), true
		}
		expansions++
		if maxExpansions > 0 && expansions > maxExpansions {
			return nil, false
		}
		for _, neighbor := range current.Hex.AllNeighbors() {
			moveCost, passable := cost(current.Hex, neighbor)
			if !passable {
				continue
			}
			newCost := costSoFar[current.Hex] + moveCost
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				seq++
				heap.Push(pq, &Node{
					Hex:    neighbor,
					Cost:   newCost + neighbor.Distance(goal),
					Seq:    seq,
					Parent: current,
				})
			}
		}
	}
	return nil, false // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Hex    Hex
	Cost   uint32
	Seq    int // insertion order, breaks cost ties
	Parent *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Hex {
	path := []Hex{}
	for node != nil {
		path = append([]Hex{node.Hex}, path...)
		node = node.Parent
	}
	return path
}
