// pkg/hexmap/movement.go
package hexmap

import (
	"container/heap"
)

// FieldOfMovement returns the hexes reachable from origin with the
// given movement budget. cost prices entering a hex; ok=false marks it
// impassable. Entering a hex spends its cost and the total spent along
// a path may not exceed the budget. The origin is always included and
// costs nothing. The result is ordered by first discovery.
func FieldOfMovement(origin Hex, budget uint32, cost func(Hex) (uint32, bool)) []Hex {
	spent := map[Hex]uint32{origin: 0}
	order := []Hex{origin}
	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Hex: origin, Cost: 0, Seq: seq})
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Cost > spent[current.Hex] {
			continue // stale entry
		}
		for _, neighbor := range current.Hex.AllNeighbors() {
			enterCost, passable := cost(neighbor)
			if !passable {
				continue
			}
			total := current.Cost + enterCost
			if total > budget {
				continue
			}
			old, seen := spent[neighbor]
			if seen && old <= total {
				continue
			}
			if !seen {
				order = append(order, neighbor)
			}
			spent[neighbor] = total
			seq++
			heap.Push(pq, &Node{Hex: neighbor, Cost: total, Seq: seq})
		}
	}
	return order
}
