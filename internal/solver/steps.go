package solver

import (
	"container/heap"

	"sudoku-solver/internal/grid"
)

// A step is one pending reduction, encoded as a dense ordinal.  The ordinal
// doubles as the queue priority: kinds are laid out in increasing bases in
// the order the reducer should prefer them, and steps of the same kind tie
// break on the flat index of their target zone.  Cheap, high-impact rules
// therefore always drain before the box-line rules.
type step int

const (
	baseCellSingular   step = 0
	baseRowSingular         = baseCellSingular + grid.NumCells
	baseColSingular         = baseRowSingular + grid.NumRows
	baseBoxSingular         = baseColSingular + grid.NumCols
	baseLineMatchRow        = baseBoxSingular + grid.NumBoxes
	baseLineMatchCol        = baseLineMatchRow + grid.NumBoxRows
	baseOnlyInLineRow       = baseLineMatchCol + grid.NumBoxCols
	baseOnlyInLineCol       = baseOnlyInLineRow + grid.NumBoxRows
	baseOnlyInBoxRow        = baseOnlyInLineCol + grid.NumBoxCols
	baseOnlyInBoxCol        = baseOnlyInBoxRow + grid.NumBoxRows

	numSteps = int(baseOnlyInBoxCol) + grid.NumBoxCols
)

func cellSingularStep(c grid.Cell) step { return baseCellSingular + step(c.Index()) }

func rowSingularStep(r grid.Row) step { return baseRowSingular + step(r.Index()) }

func colSingularStep(c grid.Col) step { return baseColSingular + step(c.Index()) }

func boxSingularStep(b grid.Box) step { return baseBoxSingular + step(b.Index()) }

func lineMatchStep(l grid.BoxRow) step { return baseLineMatchRow + step(l.Index()) }

func lineMatchColStep(l grid.BoxCol) step { return baseLineMatchCol + step(l.Index()) }

func onlyInLineStep(l grid.BoxRow) step { return baseOnlyInLineRow + step(l.Index()) }

func onlyInLineColStep(l grid.BoxCol) step { return baseOnlyInLineCol + step(l.Index()) }

func onlyInBoxStep(l grid.BoxRow) step { return baseOnlyInBoxRow + step(l.Index()) }

func onlyInBoxColStep(l grid.BoxCol) step { return baseOnlyInBoxCol + step(l.Index()) }

// A stepQueue is a deduplicating min-priority queue of steps.  Pushing a
// step that is already pending is a no-op, so each pending reduction is
// held at most once.
type stepQueue struct {
	heap   stepHeap
	queued [numSteps]bool
}

func (q *stepQueue) push(s step) {
	if q.queued[s] {
		return
	}
	q.queued[s] = true
	heap.Push(&q.heap, s)
}

func (q *stepQueue) pop() (step, bool) {
	if len(q.heap) == 0 {
		return 0, false
	}
	s := heap.Pop(&q.heap).(step)
	q.queued[s] = false
	return s, true
}

type stepHeap []step

func (h stepHeap) Len() int { return len(h) }

func (h stepHeap) Less(i, j int) bool { return h[i] < h[j] }

func (h stepHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stepHeap) Push(x any) { *h = append(*h, x.(step)) }

func (h *stepHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}
