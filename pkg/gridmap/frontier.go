// pkg/gridmap/frontier.go
package gridmap

// frontierItem is one open-list entry. G is the cost the cell had when the
// entry was pushed.
type frontierItem struct {
	F    int
	G    int
	Cell Cell
}

// frontier is a container/heap min-heap ordered by (F, Row, Col).
// Entries are never removed or fixed in place, so a cell may appear
// more than once.
type frontier []frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].Cell.Less(pq[j].Cell)
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x any) {
	*pq = append(*pq, x.(frontierItem))
}

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
